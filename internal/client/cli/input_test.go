package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/dmitrijs2005/gofinances/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if out.String() != "Name?\n> " {
		t.Fatalf("unexpected prompt %q", out.String())
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	if err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"59.9", 59.9},
		{"59,90", 59.9},
		{"1.234,50", 1234.5},
		{"R$ 12,00", 12},
		{" 7 ", 7},
	}
	for _, tt := range tests {
		got, err := parseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}

	_, err := parseAmount("ten")
	assert.Error(t, err)
}

func TestParseType(t *testing.T) {
	assert.Equal(t, models.TransactionPositive, parseType("i"))
	assert.Equal(t, models.TransactionPositive, parseType("Income"))
	assert.Equal(t, models.TransactionNegative, parseType("-"))
	assert.Equal(t, models.TransactionNegative, parseType("outcome"))
	assert.Equal(t, models.TransactionType("sideways"), parseType("sideways"))
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, "purchases", parseCategory("1"))
	assert.Equal(t, "studies", parseCategory("6"))
	assert.Equal(t, "car", parseCategory(" Car "))
	assert.Equal(t, "7", parseCategory("7"))
}
