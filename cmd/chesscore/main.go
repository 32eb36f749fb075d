// Command chesscore is a thin, one-shot CLI over the chess core: apply a
// move, run the search, or count perft nodes from a given position. It is
// not a UCI engine — no persistent process, no protocol loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/arcanox/chesscore/internal/board"
	"github.com/arcanox/chesscore/internal/engine"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "move":
		err = runMove(args[1:])
	case "bestmove":
		err = runBestMove(args[1:])
	case "perft":
		err = runPerft(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "chesscore: unknown subcommand %q\n", args[0])
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  chesscore move <fen> <move>")
	fmt.Fprintln(os.Stderr, "  chesscore bestmove [--depth N] <fen>")
	fmt.Fprintln(os.Stderr, "  chesscore perft <fen> <depth>")
}

// runMove applies one legal move in long-algebraic form and prints the
// resulting position record.
func runMove(args []string) error {
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}
	g, err := board.ParseFEN(args[0])
	if err != nil {
		return err
	}
	m, err := board.ParseMove(args[1], g)
	if err != nil {
		return err
	}
	g.MakeMove(m)
	fmt.Println(g.FEN())
	return nil
}

// runBestMove runs the search from the given position and prints the best
// move found plus its score, in centipawns from the side-to-move's
// perspective.
func runBestMove(args []string) error {
	fs := flag.NewFlagSet("bestmove", flag.ExitOnError)
	depth := fs.Int("depth", engine.DefaultDepth, "search depth in plies")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		usage()
		os.Exit(2)
	}

	g, err := board.ParseFEN(rest[0])
	if err != nil {
		return err
	}

	settings := engine.DefaultSettings()
	settings.Depth = *depth
	s := engine.NewSearcher(g, settings)
	best, score := s.Start()

	if best == board.NoMove {
		fmt.Println("no legal moves")
		return nil
	}
	fmt.Printf("%s %d\n", best, score)
	return nil
}

// runPerft counts the leaf nodes of the legal move tree at a fixed depth
// from the given position.
func runPerft(args []string) error {
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}
	g, err := board.ParseFEN(args[0])
	if err != nil {
		return err
	}
	var depth int
	if _, err := fmt.Sscanf(args[1], "%d", &depth); err != nil {
		return fmt.Errorf("chesscore: invalid depth %q", args[1])
	}

	fmt.Println(perft(g, depth))
	return nil
}

func perft(g *board.Game, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var moves board.MoveList
	board.GenerateLegalMoves(g, &moves)
	if depth == 1 {
		return int64(moves.Len())
	}
	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		g.MakeMove(m)
		nodes += perft(g, depth-1)
		g.UnmakeMove()
	}
	return nodes
}
