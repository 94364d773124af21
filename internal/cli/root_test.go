package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"gopkg.in/yaml.v3"

	"luxe_estate/internal/adapters/sanity"
	"luxe_estate/internal/shared"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

type studioSummary struct {
	Title     string `json:"title" yaml:"title"`
	ProjectID string `json:"projectId" yaml:"projectId"`
	Dataset   string `json:"dataset" yaml:"dataset"`
	Types     []struct {
		Name string `json:"name" yaml:"name"`
	} `json:"types" yaml:"types"`
}

func (s studioSummary) typeNames() string {
	var names []string
	for _, t := range s.Types {
		names = append(names, t.Name)
	}
	return strings.Join(names, ",")
}

func TestRootHelp(t *testing.T) {
	_, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubcommandsAndFlags(t *testing.T) {
	root := NewRootCmd()

	if root.PersistentFlags().Lookup("backend") == nil {
		t.Fatal("expected --backend flag to exist")
	}
	for _, name := range []string{"serve", "export", "schema"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected %s subcommand, got %v (%v)", name, cmd, err)
		}
	}
	exp, _, _ := root.Find([]string{"export"})
	out := exp.Flags().Lookup("out")
	if out == nil || out.DefValue != "dist" {
		t.Fatalf("expected --out default 'dist', got %+v", out)
	}
}

func TestSchema_JSON(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "p9")
	t.Setenv("SANITY_DATASET", "staging")

	out, err := executeCommand("schema")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var s studioSummary
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if s.Title != "RealEstate Website" || s.ProjectID != "p9" || s.Dataset != "staging" {
		t.Fatalf("unexpected studio: %+v", s)
	}
	if got := s.typeNames(); got != "property,agent,testimonial" {
		t.Fatalf("types = %s", got)
	}
}

func TestSchema_YAML(t *testing.T) {
	out, err := executeCommand("schema", "--format", "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var s studioSummary
	if err := yaml.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if len(s.Types) != 3 {
		t.Fatalf("expected 3 document types, got %d", len(s.Types))
	}
}

func TestSchema_UnknownFormat(t *testing.T) {
	_, err := executeCommand("schema", "--format", "toml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}

func TestUnknownBackendFlag(t *testing.T) {
	_, err := executeCommand("--backend", "postgres", "schema")
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Fatalf("expected unknown backend error, got %v", err)
	}
}

func TestOpenStore_API(t *testing.T) {
	store, cleanup, err := openStore(context.Background(), shared.Config{
		Backend: shared.BackendAPI, ProjectID: "p1", Dataset: "production",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanup()
	if _, ok := store.(*sanity.Client); !ok {
		t.Fatalf("expected content api client, got %T", store)
	}

	if _, _, err := openStore(context.Background(), shared.Config{Backend: shared.BackendAPI, Dataset: "production"}); err == nil {
		t.Fatal("expected error without project id")
	}
}

func TestOpenCache(t *testing.T) {
	ctx := context.Background()

	if c, _ := openCache(ctx, shared.Config{}); c != nil {
		t.Fatalf("expected no cache without REDIS_ADDR, got %T", c)
	}

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	c, cleanup := openCache(ctx, shared.Config{RedisAddr: addr})
	if c == nil {
		t.Fatal("expected redis cache")
	}
	if err := c.Set(ctx, "k", []string{"a"}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	cleanup()

	mr.Close()
	if c, _ := openCache(ctx, shared.Config{RedisAddr: addr}); c != nil {
		t.Fatal("expected unreachable redis to be skipped")
	}
}
