// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"log"

	"github.com/pkg/profile"

	"github.com/gantry-engine/gantry"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct{ V int64 }

type comp4 struct{ V int64 }

func main() {
	rounds := 50
	iters := 10000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	c1 := gantry.FactoryNewComponent[comp1]()
	c2 := gantry.FactoryNewComponent[comp2]()
	c3 := gantry.FactoryNewComponent[comp3]()
	c4 := gantry.FactoryNewComponent[comp4]()

	for range rounds {
		w := gantry.Factory.NewWorld(gantry.Config{InitialEntityCapacity: numEntities})
		node := gantry.Factory.NewQuery().And(c1, c2, c3, c4)

		for range numEntities {
			if _, err := w.CreateEntity(c1, c2, c3, c4); err != nil {
				log.Fatal(err)
			}
		}

		for range iters {
			cursor := gantry.Factory.NewCursor(node, w)
			for cursor.Next() {
				a := c1.GetFromCursor(cursor)
				b := c2.GetFromCursor(cursor)
				a.V += b.V
				a.W += b.W
			}
		}
	}
}
