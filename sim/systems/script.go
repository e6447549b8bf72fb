package systems

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/tannerhall/tilewind/sim"
)

// Script runs an author-supplied Tengo program as the entity's tick. The
// script sees x, y, vx, vy, and dt as globals and may reassign the first
// four; everything else about the entity stays out of reach. A script that
// fails to compile or run degrades the entity to plain physics.
type Script struct {
	Source string

	compiled *tengo.Compiled
	failed   bool
}

// NewScript creates a script behavior from Tengo source.
func NewScript(source string) *Script {
	return &Script{Source: source}
}

// Tick executes the script against the entity's transform and body.
func (b *Script) Tick(e sim.Entity, w *sim.World, ctx *sim.Context, dt float64) {
	if b.failed {
		return
	}
	tr, ok := w.Transforms().Get(e)
	if !ok || tr == nil {
		return
	}
	body, ok := w.Bodies().Get(e)
	if !ok || body == nil {
		return
	}
	if b.compiled == nil {
		if err := b.compile(); err != nil {
			fmt.Printf("script: entity=%d compile error: %v\n", e, err)
			b.failed = true
			return
		}
	}

	vars := map[string]float64{
		"x":  tr.Pos.X,
		"y":  tr.Pos.Y,
		"vx": body.Vel.X,
		"vy": body.Vel.Y,
		"dt": dt,
	}
	for name, v := range vars {
		if err := b.compiled.Set(name, v); err != nil {
			fmt.Printf("script: entity=%d set %s: %v\n", e, name, err)
			b.failed = true
			return
		}
	}
	if err := b.compiled.Run(); err != nil {
		fmt.Printf("script: entity=%d run error: %v\n", e, err)
		b.failed = true
		return
	}

	tr.Pos.X = b.compiled.Get("x").Float()
	tr.Pos.Y = b.compiled.Get("y").Float()
	body.Vel.X = b.compiled.Get("vx").Float()
	body.Vel.Y = b.compiled.Get("vy").Float()
}

func (b *Script) compile() error {
	script := tengo.NewScript([]byte(b.Source))
	script.SetImports(stdlib.GetModuleMap("math"))
	for _, name := range []string{"x", "y", "vx", "vy", "dt"} {
		if err := script.Add(name, 0.0); err != nil {
			return err
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return err
	}
	b.compiled = compiled
	return nil
}
