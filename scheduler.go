package gantry

import (
	"slices"

	"go.uber.org/zap"
)

// scheduler holds the ordered system list. Registration order is invocation
// order for both passes; append and remove are the only mutations.
type scheduler struct {
	systems []System
	log     *zap.Logger
}

func (s *scheduler) add(sys System) {
	s.systems = append(s.systems, sys)
}

func (s *scheduler) remove(name string) bool {
	for i, sys := range s.systems {
		if sys.Name() == name {
			s.systems = append(s.systems[:i], s.systems[i+1:]...)
			return true
		}
	}
	return false
}

// Both passes iterate a snapshot of the system list, so a system adding or
// removing systems mid-frame affects the next frame only.
func (s *scheduler) runUpdate(w World, dt float64) {
	for _, sys := range slices.Clone(s.systems) {
		s.runOne(sys.Name(), "update", func() error {
			return sys.Update(w, dt)
		})
	}
}

func (s *scheduler) runRender(w World) {
	for _, sys := range slices.Clone(s.systems) {
		renderable, ok := sys.(RenderSystem)
		if !ok {
			continue
		}
		s.runOne(sys.Name(), "render", func() error {
			return renderable.Render(w)
		})
	}
}

// runOne isolates one system callback: an error or panic is logged with the
// system's identity and the frame continues with the next system.
func (s *scheduler) runOne(name, pass string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("system panicked",
				zap.String("system", name),
				zap.String("pass", pass),
				zap.Any("panic", r),
			)
		}
	}()
	if err := fn(); err != nil {
		s.log.Warn("system failed",
			zap.String("system", name),
			zap.String("pass", pass),
			zap.Error(err),
		)
	}
}
