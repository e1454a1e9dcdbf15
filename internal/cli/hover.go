package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kls-dev/kls/internal/hover"
	"github.com/kls-dev/kls/internal/index"
	"github.com/kls-dev/kls/internal/span"
)

func RunHover(cmd *cobra.Command, args []string) error {
	file, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	line, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid line %q: %w", args[1], err)
	}
	column, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid column %q: %w", args[2], err)
	}

	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return fmt.Errorf("failed to read --root flag: %w", err)
	}
	if root == "" {
		root = filepath.Dir(file)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return err
	}

	ix, err := index.Build(context.Background(), root)
	if err != nil {
		return fmt.Errorf("indexing %s: %w", root, err)
	}

	pos := span.Position{Line: uint32(line), Column: uint32(column)}
	contents, err := hover.New(ix).Hover(file, pos)
	if err != nil {
		return err
	}
	if contents == "" {
		fmt.Println("no hover information")
		return nil
	}
	fmt.Println(contents)
	return nil
}
