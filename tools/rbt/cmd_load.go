package main

import "flag"
import "fmt"
import "math/rand"
import "time"

import "github.com/bnclabs/golog"

import "github.com/mikedlowis/data-structures/lib"
import "github.com/mikedlowis/data-structures/mem"
import "github.com/mikedlowis/data-structures/rbt"

var loadopts struct {
	n         int
	seed      int
	batchsize int
	keyspace  int
}

func parseLoadopts(args []string) {
	f := flag.NewFlagSet("load", flag.ExitOnError)

	f.IntVar(&loadopts.n, "n", 1000,
		"number of items to generate and insert")
	f.IntVar(&loadopts.seed, "seed", 1,
		"random seed")
	f.IntVar(&loadopts.batchsize, "batchsize", 100,
		"validate the tree every batchsize operations")
	f.IntVar(&loadopts.keyspace, "keyspace", 0,
		"generate keys between [0,keyspace), defaults to 10*n")
	f.Parse(args)

	if loadopts.keyspace == 0 {
		loadopts.keyspace = 10 * loadopts.n
	}
	fmt.Printf("seed: %v\n", loadopts.seed)
}

func doLoad(args []string) {
	parseLoadopts(args)

	tree := rbt.New("load", intcmp, nil)
	rnd := rand.New(rand.NewSource(int64(loadopts.seed)))

	insertavg, deleteavg := &lib.AverageInt64{}, &lib.AverageInt64{}
	keys := make([]int64, 0, loadopts.n)

	now := time.Now()
	for i := 0; i < loadopts.n; i++ {
		key := int64(rnd.Intn(loadopts.keyspace))
		start := time.Now()
		tree.Insert(mem.Box(key))
		insertavg.Add(int64(time.Since(start)))
		keys = append(keys, key)
		validatebatch(tree, i+1)
	}
	fmt.Printf("took %v to insert %v items\n", time.Since(now), loadopts.n)

	// delete a random half of the inserted keys
	now = time.Now()
	deletes := 0
	for _, key := range keys {
		if rnd.Intn(2) == 0 {
			continue
		}
		probe := mem.Box(key)
		start := time.Now()
		tree.Delete(probe)
		deleteavg.Add(int64(time.Since(start)))
		mem.Release(probe)
		deletes++
		validatebatch(tree, deletes)
	}
	fmt.Printf("took %v to delete %v items\n", time.Since(now), deletes)

	fmt.Printf("insert latency (ns): mean %v, max %v\n",
		insertavg.Mean(), insertavg.Max())
	fmt.Printf("delete latency (ns): mean %v, max %v\n",
		deleteavg.Mean(), deleteavg.Max())
	fmt.Printf("entries: %v\n", tree.Count())

	tree.Log()
	tree.Destroy()
}

func validatebatch(tree *rbt.RBT, ops int) {
	if ops%loadopts.batchsize == 0 {
		if status := tree.Validate(); status != rbt.OK {
			log.Fatalf("validate failed after %v ops: %v\n", ops, status)
		}
	}
}
