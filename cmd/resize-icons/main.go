// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"go.astrophena.name/base/cli"
	"go.astrophena.name/icons/internal/icons"
)

func main() { cli.Main(new(app)) }

const usage = "Usage: resize-icons <input_image> <output_dir>"

type app struct {
	resizer string
	watch   bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.resizer, "resizer", icons.DefaultResizer, "Resampling `backend` ("+strings.Join(icons.Resizers(), ", ")+").")
	fs.BoolVar(&a.watch, "watch", false, "Regenerate icons when the input image changes.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) != 2 {
		fmt.Fprintln(env.Stdout, usage)
		return fmt.Errorf("%w: want input image and output directory", cli.ErrInvalidArgs)
	}

	r, err := icons.LookupResizer(a.resizer)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}

	c := &icons.Config{
		Input:   env.Args[0],
		Dir:     env.Args[1],
		Resizer: r,
		Logf: func(format string, args ...any) {
			fmt.Fprintf(env.Stdout, format+"\n", args...)
		},
	}

	if a.watch {
		return icons.Watch(ctx, c)
	}

	// Failures are reported, not returned: the exit status stays zero.
	if err := icons.Resize(ctx, c); err != nil {
		fmt.Fprintf(env.Stdout, "Error: %v\n", err)
	}
	return nil
}
