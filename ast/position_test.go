package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestPosition_Location(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"filename and line", Position{Filename: "books.xml", Line: 12}, "books.xml:12"},
		{"filename only", Position{Filename: "books.xml"}, "books.xml"},
		{"line only", Position{Line: 3}, "line 3"},
		{"zero", Position{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.Location())
		})
	}
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "books.xml:4:7", Position{Filename: "books.xml", Line: 4, Column: 7}.String())
	assert.Equal(t, "4:7", Position{Line: 4, Column: 7}.String())
}

func TestPosition_IsZero(t *testing.T) {
	assert.True(t, Position{}.IsZero())
	assert.False(t, Position{Line: 1}.IsZero())
	assert.False(t, Position{Filename: "<stdin>"}.IsZero())
}
