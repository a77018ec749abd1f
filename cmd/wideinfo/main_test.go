// Copyright 2025 go-wide Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-wide/go-wide/wide"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, options{lanes: true}))
	out := buf.String()
	assert.Contains(t, out, wide.CurrentName())
	assert.Contains(t, out, buildHint(wide.CurrentLevel()))
	assert.Contains(t, out, "float32")
	assert.Contains(t, out, "uint64")
}

func TestRenderWithoutLanes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, options{}))
	assert.NotContains(t, buf.String(), "Lanes per register")
}

func TestRenderMissingOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, options{missing: true}))
	for _, f := range wide.HostFeatures() {
		if !f.Present {
			continue
		}
		for _, line := range strings.Split(buf.String(), "\n") {
			assert.False(t, strings.HasPrefix(line, f.Name+" "), "present feature %s listed", f.Name)
		}
	}
}

func TestLaneRows(t *testing.T) {
	for _, r := range laneRows() {
		assert.Positive(t, r.lanes, r.name)
		assert.Zero(t, wide.CurrentWidth()%r.lanes, r.name)
	}
}

func TestRootCmd(t *testing.T) {
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--lanes=false"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Build tier:")

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
