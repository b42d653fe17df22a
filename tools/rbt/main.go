// Command rbt loads and verifies red-black trees from the command
// line. Two commands are supported,
//
//	rbt load [-n count] [-seed n] [-batchsize n]
//	rbt monster -prodfile file [-n count] [-seed n] [-bagdir dir]
//
// load inserts and deletes random integer keys, validating the tree
// every batch. monster drives the tree with a grammar generated
// stream of insert/delete/lookup commands. Both report tree
// statistics and a leak report on the way out.
package main

import "fmt"
import "os"

import "github.com/bnclabs/golog"

import "github.com/mikedlowis/data-structures/mem"
import "github.com/mikedlowis/data-structures/rbt"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	log.SetLogger(nil, map[string]interface{}{
		"log.level": "info",
		"log.file":  "",
	})
	rbt.LogComponents("all")

	tracker := mem.TrackLeaks()

	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "load":
		doLoad(args)
	case "monster":
		doMonster(args)
	default:
		usage()
		os.Exit(1)
	}

	if n := tracker.Report(os.Stdout); n == 0 {
		fmt.Println("no leaks")
	}
	tracker.Stop()
}

func usage() {
	fmt.Println("usage: rbt <load|monster> [options]")
}

func intcmp(a, b mem.Object) int {
	x, y := mem.Unbox(a.(*mem.Boxed)), mem.Unbox(b.(*mem.Boxed))
	if x < y {
		return -1
	} else if x > y {
		return 1
	}
	return 0
}
