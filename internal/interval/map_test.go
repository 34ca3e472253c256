// Copyright 2021-2025 The driftlint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftlint/driftlint/internal/interval"
)

func TestGet(t *testing.T) {
	t.Parallel()

	var m interval.Map[int, string]
	assert.Nil(t, m.Get(5).Value)

	require.Nil(t, m.Insert(10, 20, "a").Value)
	require.Nil(t, m.Insert(30, 30, "b").Value)
	assert.Equal(t, 2, m.Len())

	for _, key := range []int{10, 15, 20} {
		got := m.Get(key)
		require.NotNil(t, got.Value, "key %d", key)
		assert.Equal(t, "a", *got.Value)
		assert.Equal(t, 10, got.Start)
		assert.Equal(t, 20, got.End)
	}

	got := m.Get(30)
	require.NotNil(t, got.Value)
	assert.Equal(t, "b", *got.Value)

	for _, key := range []int{9, 21, 29, 31} {
		assert.Nil(t, m.Get(key).Value, "key %d", key)
	}
}

func TestInsertOverlap(t *testing.T) {
	t.Parallel()

	var m interval.Map[int, string]
	require.Nil(t, m.Insert(10, 20, "a").Value)

	cases := []struct{ start, end int }{
		{12, 18}, // Contained.
		{10, 20}, // Equal.
		{5, 12},  // Reaches into the front.
		{18, 25}, // Reaches out the back.
		{5, 25},  // Contains.
	}
	for _, c := range cases {
		overlap := m.Insert(c.start, c.end, "x")
		require.NotNil(t, overlap.Value, "[%d, %d]", c.start, c.end)
		assert.Equal(t, "a", *overlap.Value)
	}
	assert.Equal(t, 1, m.Len())

	// Adjacent but disjoint intervals are fine; endpoints are inclusive.
	assert.Nil(t, m.Insert(21, 25, "b").Value)
	assert.NotNil(t, m.Insert(25, 26, "c").Value)
}

func TestAll(t *testing.T) {
	t.Parallel()

	var m interval.Map[int, string]
	m.Insert(30, 40, "b")
	m.Insert(0, 10, "a")
	m.Insert(50, 50, "c")

	var got []string
	for iv := range m.All() {
		got = append(got, *iv.Value)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
