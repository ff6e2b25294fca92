package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"

	"l2s/utils/proc"
)

// toolchainStub plays node, lessc and sass.
func toolchainStub(t *testing.T, lessCSS, sassCSS string) proc.Runner {
	t.Helper()
	tree, err := json.Marshal(boxGraph())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	return proc.RunnerFunc(func(_ context.Context, name string, args, _ []string, stdin io.Reader) ([]byte, error) {
		in, err := io.ReadAll(stdin)
		if err != nil {
			t.Errorf("ReadAll() error = %v", err)
		}
		switch name {
		case "node":
			return tree, nil
		case "lessc":
			if args[len(args)-1] != "-" {
				t.Errorf("lessc args = %q, want stdin source", args)
			}
			return []byte(lessCSS), nil
		case "sass":
			if string(in) != boxSCSS {
				t.Errorf("sass input =\n%s\nwant\n%s", in, boxSCSS)
			}
			if !slices.Contains(args, "--stdin") {
				t.Errorf("sass args = %q, want --stdin", args)
			}
			return []byte(sassCSS), nil
		}
		t.Errorf("unexpected program %q", name)
		return nil, errors.New("unexpected program")
	})
}

func compareCommand(out *bytes.Buffer) *cli.Command {
	return &cli.Command{
		Name:   "compare",
		Flags:  []cli.Flag{&cli.StringFlag{Name: "to"}},
		Action: Compare,
		Writer: out,
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name    string
		sassCSS string
		wantErr bool
		want    string
	}{
		{"equivalent", ".box {\n  width: 10px;\n}\n", false, "compiled CSS is equivalent"},
		{"different", ".box {\n  width: 12px;\n}\n", true, "- .box { width: 10px; }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, env := setupTestEnv(t)
			env.Runner = toolchainStub(t, ".box{width:10px}", tt.sassCSS)
			src := filepath.Join(t.TempDir(), "box.less")
			writeFile(t, src, "@a: 10px; .box { width: @a; }")

			var out bytes.Buffer
			err := compareCommand(&out).Run(ctx, []string{"compare", src})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestCompare_MissingSource(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	var out bytes.Buffer
	if err := compareCommand(&out).Run(ctx, []string{"compare"}); err == nil {
		t.Error("Run() expected error without source")
	}
}

func TestCompare_LesscFailure(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Runner = proc.RunnerFunc(func(context.Context, string, []string, []string, io.Reader) ([]byte, error) {
		return nil, errors.New("exit status 1")
	})
	src := filepath.Join(t.TempDir(), "box.less")
	writeFile(t, src, "@a: 10px;")

	var out bytes.Buffer
	err := compareCommand(&out).Run(ctx, []string{"compare", src})
	if err == nil || !strings.Contains(err.Error(), "lessc compilation failed") {
		t.Errorf("Run() error = %v, want lessc failure", err)
	}
}
