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
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParticlesParsesAndDedups(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)

	path := filepath.Join(tmpdir, "particles.txt")
	contents := "# comment\n10 0 0 10\n10 0 0 10\n-10 0 0 10\n\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))

	particles, err := loadParticles(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, particles, 2)
	assert.Equal(t, 10.0, particles[0].Px())
	assert.Equal(t, -10.0, particles[1].Px())
}

func TestLoadParticlesRejectsMalformedLine(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)

	path := filepath.Join(tmpdir, "particles.txt")
	require.NoError(t, ioutil.WriteFile(path, []byte("10 0 0\n"), 0644))

	_, err := loadParticles(context.Background(), path)
	assert.Error(t, err)
}
