package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/parcel/internal/cli"
	"github.com/alexanderramin/parcel/internal/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, app *cli.App, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewApp_DemoSurvivesBrokenEnvironment(t *testing.T) {
	tests := []struct {
		name       string
		home       string
		config     string
		storageErr string
	}{
		{name: "home unset", home: "", storageErr: "home directory"},
		{name: "invalid config", home: t.TempDir(), config: "color = \"blue\"\n", storageErr: "invalid color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", tc.home)
			t.Setenv("PARCEL_CONFIG", "")
			if tc.config != "" {
				t.Setenv("PARCEL_CONFIG", writeConfig(t, tc.config))
			}

			app, closeDB := newApp(io.Discard)
			defer closeDB()

			out, err := execute(t, app)
			require.NoError(t, err)
			assert.Equal(t, demo.Build().Describe(), out)

			out, err = execute(t, app, "demo")
			require.NoError(t, err)
			assert.Equal(t, demo.Build().Describe(), out)

			_, err = execute(t, app, "box", "list")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.storageErr)
		})
	}
}

func TestNewApp_StoresInConfiguredDB(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("PARCEL_CONFIG", "")
	t.Setenv("PARCEL_DB", filepath.Join(dir, "data", "parcel.db"))

	app, closeDB := newApp(io.Discard)
	defer closeDB()

	_, err := execute(t, app, "demo", "--save")
	require.NoError(t, err)

	out, err := execute(t, app, "box", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Order parcel")
	assert.FileExists(t, filepath.Join(dir, "data", "parcel.db"))
}
