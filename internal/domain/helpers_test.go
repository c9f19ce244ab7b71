package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gpifab.dev/pkg/gpifab/internal/adapter"
	"gpifab.dev/pkg/gpifab/internal/domain"
	m "gpifab.dev/pkg/gpifab/internal/model"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()

	content, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)

	return content
}

func loadSample(t *testing.T) m.ConfigModel {
	t.Helper()

	loader := domain.NewLoader(adapter.NewLocalGPIFFileAdapter())

	model, err := loader.Load(context.Background(), readTestdata(t, "cyfxgpif2config.h"), true)
	require.NoError(t, err)

	return model
}

func parseOverlay(t *testing.T, name string) []m.OverlayRow {
	t.Helper()

	f, err := os.Open(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)

	defer func() {
		_ = f.Close()
	}()

	rows, err := adapter.NewLocalOverlayAdapter().Parse(context.Background(), f)
	require.NoError(t, err)

	return rows
}

func strPtr(s string) *string {
	return &s
}

func bits(positions ...uint) *m.BitList {
	list := m.BitList(positions)
	if list == nil {
		list = m.BitList{}
	}

	return &list
}

func limbs(a, b, c uint32) m.Register {
	return m.FromLimbs([3]uint32{a, b, c})
}
