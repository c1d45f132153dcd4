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
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	farm "github.com/dgryski/go-farm"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
)

// particle is one line of input: a four-momentum in Cartesian components
// (spec section 6, "Particle contract").
type particle struct {
	px, py, pz, e float64
}

func (p particle) Px() float64     { return p.px }
func (p particle) Py() float64     { return p.py }
func (p particle) Pz() float64     { return p.pz }
func (p particle) Energy() float64 { return p.e }

// loadParticles reads a whitespace-separated "px py pz e" record per line
// from path, transparently decompressing .gz (klauspost/compress, matching
// pileup/common.go's LoadFa) and .sz (snappy, matching
// encoding/bampair/disk_mate_shard.go's reader). Duplicate records (byte-
// identical lines) are dropped, keyed by a farmhash digest of the line the
// way fusion/kmer_index.go keys its shards, rather than by the raw text.
func loadParticles(ctx context.Context, path string) (particles []particle, err error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fastjet-cluster: opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var reader io.Reader = f.Reader(ctx)
	switch {
	case fileio.DetermineType(path) == fileio.Gzip:
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("fastjet-cluster: gzip %s: %w", path, err)
		}
		reader = gz
	case strings.HasSuffix(path, ".sz"):
		reader = snappy.NewReader(reader)
	}

	seen := make(map[uint64]bool)
	scanner := bufio.NewScanner(reader)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key := farm.Hash64([]byte(line))
		if seen[key] {
			continue
		}
		seen[key] = true

		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("fastjet-cluster: %s:%d: want 4 fields (px py pz e), got %d", path, lineNum, len(fields))
		}
		var vals [4]float64
		for i, field := range fields {
			vals[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("fastjet-cluster: %s:%d: %w", path, lineNum, err)
			}
		}
		particles = append(particles, particle{px: vals[0], py: vals[1], pz: vals[2], e: vals[3]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fastjet-cluster: reading %s: %w", path, err)
	}
	return particles, nil
}
