package application

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textgate/textgate/internal/domain"
	"github.com/textgate/textgate/internal/domain/quality"
)

func writeEssay(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestValidateFiles_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 12; i++ {
		content := acceptedText
		if i%3 == 0 {
			content = strings.Repeat("你好世界", 10)
		}
		paths = append(paths, writeEssay(t, dir, string(rune('a'+i))+".txt", content))
	}

	svc := NewValidateService(quality.New(domain.DefaultPolicy()), 4)
	results, err := svc.ValidateFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
		assert.Equal(t, i%3 != 0, r.Verdict.IsValid, "file %d", i)
	}
}

func TestValidateFiles_MissingFile(t *testing.T) {
	dir := t.TempDir()
	ok := writeEssay(t, dir, "ok.txt", acceptedText)
	missing := filepath.Join(dir, "missing.txt")

	svc := NewValidateService(quality.New(domain.DefaultPolicy()), 0)
	_, err := svc.ValidateFiles(context.Background(), []string{ok, missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestValidateFiles_Empty(t *testing.T) {
	svc := NewValidateService(quality.New(domain.DefaultPolicy()), 2)
	results, err := svc.ValidateFiles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestValidateFiles_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	p := writeEssay(t, dir, "a.txt", acceptedText)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := NewValidateService(quality.New(domain.DefaultPolicy()), 1)
	_, err := svc.ValidateFiles(ctx, []string{p})
	assert.ErrorIs(t, err, context.Canceled)
}
