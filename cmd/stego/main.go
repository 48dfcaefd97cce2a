package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/notnil/chess"
	"github.com/tonniewhood/stegostrips/internal/config"
	"github.com/tonniewhood/stegostrips/internal/solve"
	"github.com/tonniewhood/stegostrips/pkg/plangen"
)

const divider = "============================================================"

func printMenu() {
	fmt.Println("\n" + divider)
	fmt.Println("stegoSTRIPSus - Chess Endgame Solver")
	fmt.Println(divider)
	fmt.Println("\n[1] Solve from FEN string")
	fmt.Println("[2] Solve predefined endgame")
	fmt.Println("[3] List predefined endgames")
	fmt.Println("[4] Show board from FEN")
	fmt.Println("[5] Verify forced mate with engine")
	fmt.Println("[h] Help")
	fmt.Println("[q] Quit")
	fmt.Println(strings.Repeat("-", 60))
}

func showHelp() {
	fmt.Println("\n" + divider)
	fmt.Println("Chess Endgame Solver - Help")
	fmt.Println(divider)
	fmt.Println("\nSupported endgames: one or two white heavy pieces (queen/rook)")
	fmt.Println("against a lone black king.")
	fmt.Println("\nExamples:")
	fmt.Println("  Predefined endgames: PUSH, POP, ADD, SUB, JMP, JZ, LOAD, HALT")
	fmt.Println("  FEN example: '7k/8/4Q1K1/8/8/8/8/8 w - - 0 1'")
	fmt.Println(divider)
}

func printOutcome(outcome plangen.Outcome) {
	for _, d := range outcome.Diagnostics {
		fmt.Println(d)
	}
	if !outcome.Succeeded {
		fmt.Println("[ERROR] Planner run failed")
		return
	}
	if len(outcome.Plan) == 0 {
		fmt.Println("No solution found")
		return
	}
	fmt.Println("Solution found:")
	for i, step := range outcome.Plan {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
}

func showBoard(fen string) {
	fenFunc, err := chess.FEN(fen)
	if err != nil {
		fmt.Println("[ERROR]", err.Error())
		return
	}
	game := chess.NewGame(fenFunc)
	fmt.Println(game.Position().Board().Draw())
}

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		panic(err)
	}

	catalog := plangen.NewCatalog(cfg.Planner.PredefinedDir)
	service := &solve.Service{
		Compiler: &plangen.Compiler{TemplatePath: cfg.Planner.TemplatePath},
		Invoker:  &plangen.Invoker{Path: cfg.Planner.Path},
		Catalog:  catalog,
	}

	fmt.Println("\n" + divider)
	fmt.Println("Welcome to stegoSTRIPSus - Chess Endgame Solver")
	fmt.Println(divider)
	fmt.Println("\nType 'h' for help or 'q' to quit")

	in := bufio.NewScanner(os.Stdin)
	prompt := func(msg string) string {
		fmt.Print(msg)
		if !in.Scan() {
			fmt.Println()
			os.Exit(0)
		}
		return strings.TrimSpace(in.Text())
	}

	for {
		printMenu()
		choice := strings.ToLower(prompt("\nEnter your choice: "))

		switch choice {
		case "1", "solve-fen":
			fen := prompt("[SOLVE] Enter FEN string: ")
			if fen == "" {
				fmt.Println("[ERROR] FEN string cannot be empty")
				continue
			}
			outcome, err := service.SolveFEN(fen)
			if err != nil {
				fmt.Println("[ERROR]", err.Error())
				continue
			}
			printOutcome(outcome)

		case "2", "solve-pred":
			selector := prompt("Enter predefined endgame name or ID: ")
			if selector == "" {
				fmt.Println("[ERROR] Endgame name cannot be empty")
				continue
			}
			entry, outcome, err := service.SolvePredefined(selector)
			if err != nil {
				fmt.Println("[ERROR]", err.Error())
				continue
			}
			fmt.Printf("[SOLVE] Running predefined endgame: %s\n", entry.Name)
			printOutcome(outcome)

		case "3", "list":
			fmt.Println("\n[LIST] Available predefined endgames:")
			for _, e := range catalog.Entries() {
				fmt.Printf("  %d. %s  (%s)\n", e.Ordinal, e.Name, e.FEN)
			}

		case "4", "board":
			fen := prompt("Enter FEN string: ")
			if fen == "" {
				fmt.Println("[ERROR] FEN string cannot be empty")
				continue
			}
			showBoard(fen)

		case "5", "verify":
			fen := prompt("Enter FEN string: ")
			if fen == "" {
				fmt.Println("[ERROR] FEN string cannot be empty")
				continue
			}
			mate, err := plangen.VerifyForcedMate(cfg.Stockfish.Path, fen, cfg.Stockfish.Args...)
			if err != nil {
				fmt.Println("[ERROR]", err.Error())
				continue
			}
			if mate {
				fmt.Println("Engine confirms a forced mate for white")
			} else {
				fmt.Println("Engine found no forced mate for white")
			}

		case "h", "help":
			showHelp()

		case "q", "quit":
			fmt.Println("\nДо Свидания :)")
			return

		default:
			fmt.Printf("\n[ERROR] Invalid choice: '%s'\n", choice)
			fmt.Println("Type 'h' for help")
		}
	}
}
