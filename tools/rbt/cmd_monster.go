package main

import "flag"
import "fmt"
import "sort"

import "github.com/bnclabs/golog"

import "github.com/mikedlowis/data-structures/mem"
import "github.com/mikedlowis/data-structures/rbt"

var monsteropts struct {
	n        int
	seed     int
	bagdir   string
	prodfile string
}

func parseMonsteropts(args []string) {
	f := flag.NewFlagSet("monster", flag.ExitOnError)

	f.IntVar(&monsteropts.n, "n", 1000,
		"number of command batches to generate and apply")
	f.IntVar(&monsteropts.seed, "seed", 1,
		"random seed")
	f.StringVar(&monsteropts.bagdir, "bagdir", "",
		"bag directory for monster sample data.")
	f.StringVar(&monsteropts.prodfile, "prodfile", "",
		"monster production file")
	f.Parse(args)

	if monsteropts.prodfile == "" {
		log.Fatalf("please provide production file to monster\n")
	}
	fmt.Printf("seed: %v\n", monsteropts.seed)
}

func doMonster(args []string) {
	parseMonsteropts(args)

	tree := rbt.New("monster", intcmp, nil)
	ref := map[int64]bool{}
	stats := map[string]int{}

	opch := make(chan [][]interface{}, 1000)
	go generate(monsteropts.n, monsteropts.prodfile, opch)

	count := 0
	for cmds := range opch {
		for _, cmd := range cmds {
			name := cmd[0].(string)
			stats[name] = stats[name] + 1
			applycommand(tree, ref, name, cmd[1:])
		}
		count++
		if count >= monsteropts.n {
			break
		}
		if status := tree.Validate(); status != rbt.OK {
			log.Fatalf("validate failed after %v batches: %v\n", count, status)
		}
	}

	// print statistics
	keys, total := []string{}, 0
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		total += stats[key]
		fmt.Printf("%v : %v\n", key, stats[key])
	}
	fmt.Printf("total : %v\n", total)
	fmt.Printf("entries: %v\n", tree.Count())

	tree.Log()
	tree.Destroy()
}

func applycommand(
	tree *rbt.RBT, ref map[int64]bool, name string, args []interface{}) {

	switch name {
	case "insert":
		key := int64(args[0].(float64))
		if ref[key] == false { // keep keys distinct for lookup checks
			tree.Insert(mem.Box(key))
			ref[key] = true
		}
	case "delete":
		key := int64(args[0].(float64))
		probe := mem.Box(key)
		tree.Delete(probe)
		mem.Release(probe)
		delete(ref, key)
	case "lookup":
		key := int64(args[0].(float64))
		probe := mem.Box(key)
		nd := tree.Lookup(probe)
		mem.Release(probe)
		if present := nd != nil; present != ref[key] {
			log.Fatalf("lookup %v: present %v, expected %v\n",
				key, present, ref[key])
		}
	case "validate":
		if status := tree.Validate(); status != rbt.OK {
			log.Fatalf("validate failed: %v\n", status)
		}
	default:
		log.Fatalf("unknown command %q\n", name)
	}
}
