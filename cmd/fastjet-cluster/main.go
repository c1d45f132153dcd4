// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/quarkjet/fastjet/cluster"
	"github.com/quarkjet/fastjet/jetstore"
)

var (
	algoName = flag.String("algorithm", "antikt", "Clustering algorithm: kt, antikt, ca, genkt, eekt, durham")
	power    = flag.Float64("p", 0, "Generalised-kt power; required for genkt and eekt")
	radius   = flag.Float64("R", 0, "Jet radius; defaults to 1.0 for tiled algorithms, 4.0 for e+e-")
	ptmin    = flag.Float64("ptmin", 0, "Minimum pt for -mode=inclusive")
	dcut     = flag.Float64("dcut", 0, "dij_min cutoff for -mode=exclusive")
	mode     = flag.String("mode", "inclusive", "Output selection: inclusive or exclusive")
	check    = flag.Bool("check-consistency", false, "Run cluster.CheckConsistency on the result before printing")
)

var algorithms = map[string]cluster.Algorithm{
	"kt":     cluster.Kt,
	"antikt": cluster.AntiKt,
	"ca":     cluster.CA,
	"genkt":  cluster.GenKt,
	"eekt":   cluster.EEKt,
	"durham": cluster.Durham,
}

func usage() {
	fmt.Printf("Usage: %s [OPTIONS] inputpath\n", os.Args[0])
	fmt.Printf("inputpath holds one \"px py pz e\" record per line; .gz and .sz are decompressed transparently.\n")
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("Missing positional argument (inputpath required); please check flag syntax: '%s'", strings.Join(flag.Args(), " "))
	}
	inputPath := flag.Arg(0)

	algo, ok := algorithms[strings.ToLower(*algoName)]
	if !ok {
		log.Fatalf("unknown algorithm %q", *algoName)
	}

	ctx := vcontext.Background()
	particles, err := loadParticles(ctx, inputPath)
	if err != nil {
		log.Panicf("%v", err)
	}

	cfg := cluster.Config{Algorithm: algo, R: *radius}
	if *power != 0 {
		cfg.P, cfg.PSet = *power, true
	}

	var cs *cluster.ClusterSequence
	if algo == cluster.EEKt || algo == cluster.Durham {
		cs, err = cluster.EEReconstruct(particles, cfg, nil)
	} else {
		cs, err = cluster.TiledReconstruct(particles, cfg, nil)
	}
	if err != nil {
		log.Panicf("%v", err)
	}

	if *check {
		if err := cluster.CheckConsistency(cs); err != nil {
			log.Panicf("%v", err)
		}
	}

	printJets(cs)
	log.Debug.Printf("exiting")
}

func printJets(cs *cluster.ClusterSequence) {
	var jets []jetstore.Jet
	switch *mode {
	case "exclusive":
		jets = cs.ExclusiveJets(*dcut)
	default:
		jets = cs.InclusiveJets(*ptmin)
	}
	fmt.Printf("# %s strategy=%s p=%v R=%v njets=%d\n", cs.Algorithm, cs.Strategy, cs.P, cs.R, len(jets))
	for _, j := range jets {
		fmt.Printf("%.10g\t%.10g\t%.10g\t%.10g\n", j.Px(), j.Py(), j.Pz(), j.Energy())
	}
}
