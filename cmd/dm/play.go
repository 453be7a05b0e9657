package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tavernkeep/dungeonmaster/internal/dice"
	"github.com/tavernkeep/dungeonmaster/internal/engine"
	"github.com/tavernkeep/dungeonmaster/internal/entities/game"
	"github.com/tavernkeep/dungeonmaster/internal/errors"
	"github.com/tavernkeep/dungeonmaster/internal/orchestrators/director"
	"github.com/tavernkeep/dungeonmaster/internal/pkg/clock"
	"github.com/tavernkeep/dungeonmaster/internal/pkg/idgen"
	redisclient "github.com/tavernkeep/dungeonmaster/internal/redis"
	"github.com/tavernkeep/dungeonmaster/internal/repositories/snapshot"
)

var (
	campaignPath string
	saveSlot     string
	rngSeed      uint64
	partyNames   []string
	redisAddr    string
	resume       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a campaign interactively",
	Long: `Play runs the interactive campaign loop. Press enter to advance one
scene, "s" (or "save") to save the session, "q" (or "quit") to quit.
The choices printed at the prompt belong to the upcoming scene; type a
choice key to take that branch. Command words are matched exactly, so
a campaign must not name a choice key "s", "save", "q" or "quit".`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&campaignPath, "campaign", "", "campaign content document (YAML)")
	playCmd.Flags().StringVar(&saveSlot, "save", "save.yaml", "save slot: a file path, or a slot name with --redis")
	playCmd.Flags().Uint64Var(&rngSeed, "seed", 0, "dice seed (random when omitted)")
	playCmd.Flags().StringSliceVar(&partyNames, "party", nil, "comma-separated character names to enroll")
	playCmd.Flags().StringVar(&redisAddr, "redis", "", "redis endpoint for save slots instead of the filesystem")
	playCmd.Flags().BoolVar(&resume, "resume", false, "resume from the save slot instead of starting fresh")
}

func newRepository() (snapshot.Repository, error) {
	if redisAddr != "" {
		client, err := redisclient.NewClient(redisAddr, nil)
		if err != nil {
			return nil, err
		}
		return snapshot.NewRedisRepository(&snapshot.RedisConfig{
			Client: client,
			Clock:  clock.New(),
		})
	}
	return snapshot.NewFileRepository(&snapshot.FileConfig{Clock: clock.New()})
}

func newParty() []*game.Character {
	idGen := idgen.NewUUID("char")
	members := make([]*game.Character, 0, len(partyNames))
	for _, name := range partyNames {
		members = append(members, &game.Character{
			ID:        idGen.Generate(),
			Name:      name,
			Abilities: game.DefaultAbilityScores(),
			HP:        10,
			Inventory: game.Inventory{Items: []string{}},
		})
	}
	return members
}

func runPlay(cmd *cobra.Command, args []string) error {
	if campaignPath == "" && !resume {
		return fmt.Errorf("--campaign is required unless resuming")
	}

	seed := rngSeed
	if !cmd.Flags().Changed("seed") {
		var err error
		seed, err = dice.NewSeed()
		if err != nil {
			return err
		}
	}
	roller := dice.NewRoller(seed)

	repo, err := newRepository()
	if err != nil {
		return err
	}

	svc, err := director.NewOrchestrator(&director.Config{
		Roller:    roller,
		Snapshots: repo,
		Engine:    engine.NewStub(),
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if resume {
		out, err := svc.Load(ctx, &director.LoadInput{Slot: saveSlot})
		if err != nil {
			return err
		}
		fmt.Printf("Resumed at scene %d of %d (party of %d).\n", out.SceneIndex+1, out.SceneCount, out.PartySize)
		printChoices(os.Stdout, out.Choices)
	} else {
		out, err := svc.Start(ctx, &director.StartInput{
			StoryPath: campaignPath,
			Members:   newParty(),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Campaign loaded: %d scenes ahead.\n", out.SceneCount)
		printChoices(os.Stdout, out.Choices)
	}

	return playLoop(ctx, svc, os.Stdin, os.Stdout, saveSlot)
}

// playLoop drives one session to quit or completion. Exact command
// words save and quit; anything else advances, with non-empty input
// passed through as the choice key. The choices printed after each
// scene are the ones the next advance will accept.
func playLoop(ctx context.Context, svc director.Service, in io.Reader, out io.Writer, slot string) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "[enter] next, s)ave, q)uit, or a choice key > ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "q", "quit":
			return nil
		case "s", "save":
			if _, err := svc.Save(ctx, &director.SaveInput{Slot: slot}); err != nil {
				fmt.Fprintf(out, "Save failed: %v\n", errors.GetMessage(err))
				continue
			}
			fmt.Fprintln(out, "Saved.")
		default:
			played, err := svc.PlayNext(ctx, &director.PlayNextInput{Choice: input})
			if err != nil {
				fmt.Fprintf(out, "Cannot advance: %v\n", errors.GetMessage(err))
				continue
			}
			fmt.Fprintln(out, played.Scene.Text)
			if played.Completed {
				fmt.Fprintln(out, "Congratulations, you won!")
				return nil
			}
			printChoices(out, played.NextChoices)
		}
	}
}

func printChoices(w io.Writer, keys []string) {
	if len(keys) > 0 {
		fmt.Fprintf(w, "Choices: %s\n", strings.Join(keys, ", "))
	}
}
