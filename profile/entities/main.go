// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities cpu.pprof

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

func main() {
	rounds := 50
	iters := 200
	entities := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	c1 := gantry.FactoryNewComponent[comp1]()
	c2 := gantry.FactoryNewComponent[comp2]()

	for range rounds {
		w := gantry.Factory.NewWorld(gantry.Config{InitialEntityCapacity: numEntities})
		node := gantry.Factory.NewQuery().And(c1, c2)

		for range iters {
			ids := make([]gantry.EntityID, 0, numEntities)
			for range numEntities {
				e, err := w.CreateEntity(c1, c2)
				if err != nil {
					log.Fatal(err)
				}
				ids = append(ids, e)
			}

			cursor := gantry.Factory.NewCursor(node, w)
			for cursor.Next() {
				a := c1.GetFromCursor(cursor)
				b := c2.GetFromCursor(cursor)
				a.V += b.V
				a.W += b.W
			}

			for _, e := range ids {
				if err := w.DestroyEntity(e); err != nil {
					log.Fatal(err)
				}
			}
		}
	}
}
