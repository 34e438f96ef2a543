// Package resource provides ref-counted asset bookkeeping for the engine.
// Assets are identified by opaque 64-bit handles derived from their path;
// the ECS stores handles as plain component fields and never interprets
// them.
package resource

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/gantry-engine/gantry"
)

// Handle is the stable identity of one asset path.
type Handle uint64

// HandleFor derives the handle for a path. The same path always yields the
// same handle, in any process.
func HandleFor(path string) Handle {
	return Handle(xxhash.Sum64String(path))
}

// Type classifies an asset for bulk operations.
type Type int

const (
	TypeUnknown Type = iota
	TypeMesh
	TypeTexture
	TypeShader
	TypeSound
	TypeFont
	TypeData
)

// NotFoundError reports an asset path that could not be resolved against the
// root or any search path.
type NotFoundError struct {
	Path string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("asset not found: %s", e.Path)
}

// UnknownHandleError reports a handle with no loaded asset behind it.
type UnknownHandleError struct {
	Handle Handle
}

func (e UnknownHandleError) Error() string {
	return fmt.Sprintf("unknown asset handle %d", e.Handle)
}

type entry struct {
	path string
	typ  Type
	refs uint32
	data []byte
}

// Stats is a snapshot of the manager's bookkeeping.
type Stats struct {
	Loaded     int
	TotalBytes int
}

// Manager tracks loaded assets by handle. Like the ECS core it is
// single-threaded by contract: load and unload from the frame goroutine
// only.
type Manager struct {
	root        string
	searchPaths []string
	entries     map[Handle]*entry
	handles     gantry.Cache[Handle]
	log         *zap.Logger
}

// NewManager builds a manager rooted at root, bounded to maxAssets loaded
// assets. A nil logger disables logging.
func NewManager(root string, maxAssets int, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		root:    root,
		entries: make(map[Handle]*entry),
		handles: gantry.FactoryNewCache[Handle](maxAssets),
		log:     log,
	}
}

// AddSearchPath registers an extra directory consulted by FindFile and Load
// after the root. Duplicate paths are ignored.
func (m *Manager) AddSearchPath(path string) {
	for _, existing := range m.searchPaths {
		if existing == path {
			return
		}
	}
	m.searchPaths = append(m.searchPaths, path)
}

func (m *Manager) RemoveSearchPath(path string) bool {
	for i, existing := range m.searchPaths {
		if existing == path {
			m.searchPaths = append(m.searchPaths[:i], m.searchPaths[i+1:]...)
			return true
		}
	}
	return false
}

// FindFile resolves a relative asset path against the root and the search
// paths, in registration order.
func (m *Manager) FindFile(path string) (string, error) {
	candidates := make([]string, 0, len(m.searchPaths)+1)
	candidates = append(candidates, filepath.Join(m.root, path))
	for _, dir := range m.searchPaths {
		candidates = append(candidates, filepath.Join(dir, path))
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", NotFoundError{Path: path}
}

// Load reads the asset and returns its handle with one reference. Loading an
// already-loaded path just bumps the refcount.
func (m *Manager) Load(path string, typ Type) (Handle, error) {
	h := HandleFor(path)
	if existing, ok := m.entries[h]; ok {
		existing.refs++
		return h, nil
	}

	resolved, err := m.FindFile(path)
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return 0, fmt.Errorf("failed to read asset %s: %w", path, err)
	}
	if _, err := m.handles.Register(path, h); err != nil {
		return 0, fmt.Errorf("failed to register asset %s: %w", path, err)
	}

	m.entries[h] = &entry{path: path, typ: typ, refs: 1, data: data}
	m.log.Debug("asset loaded",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
	)
	return h, nil
}

// Lookup returns the handle for an already-loaded path.
func (m *Manager) Lookup(path string) (Handle, bool) {
	idx, ok := m.handles.GetIndex(path)
	if !ok {
		return 0, false
	}
	return *m.handles.GetItem(idx), true
}

// IsLoaded reports whether the path currently has a loaded asset.
func (m *Manager) IsLoaded(path string) bool {
	_, ok := m.entries[HandleFor(path)]
	return ok
}

// Data returns the asset's bytes.
func (m *Manager) Data(h Handle) ([]byte, error) {
	e, ok := m.entries[h]
	if !ok {
		return nil, UnknownHandleError{Handle: h}
	}
	return e.data, nil
}

// Path returns the path an asset was loaded from.
func (m *Manager) Path(h Handle) (string, error) {
	e, ok := m.entries[h]
	if !ok {
		return "", UnknownHandleError{Handle: h}
	}
	return e.path, nil
}

// AddRef bumps the asset's refcount and returns the new count.
func (m *Manager) AddRef(h Handle) (uint32, error) {
	e, ok := m.entries[h]
	if !ok {
		return 0, UnknownHandleError{Handle: h}
	}
	e.refs++
	return e.refs, nil
}

// Release drops one reference and unloads the asset when none remain. It
// returns the remaining count.
func (m *Manager) Release(h Handle) (uint32, error) {
	e, ok := m.entries[h]
	if !ok {
		return 0, UnknownHandleError{Handle: h}
	}
	e.refs--
	if e.refs == 0 {
		m.unload(h, e)
		return 0, nil
	}
	return e.refs, nil
}

// RefCount reports the asset's current refcount.
func (m *Manager) RefCount(h Handle) (uint32, error) {
	e, ok := m.entries[h]
	if !ok {
		return 0, UnknownHandleError{Handle: h}
	}
	return e.refs, nil
}

// Unload drops the asset regardless of refcount.
func (m *Manager) Unload(h Handle) error {
	e, ok := m.entries[h]
	if !ok {
		return UnknownHandleError{Handle: h}
	}
	m.unload(h, e)
	return nil
}

// UnloadAll unloads every asset of the given type (TypeUnknown means all)
// and returns how many were dropped.
func (m *Manager) UnloadAll(typ Type) int {
	var doomed []Handle
	for h, e := range m.entries {
		if typ == TypeUnknown || e.typ == typ {
			doomed = append(doomed, h)
		}
	}
	// Deterministic unload order keeps logs stable
	sort.Slice(doomed, func(i, j int) bool { return doomed[i] < doomed[j] })
	for _, h := range doomed {
		m.unload(h, m.entries[h])
	}
	return len(doomed)
}

func (m *Manager) unload(h Handle, e *entry) {
	delete(m.entries, h)
	m.rebuildHandleCache()
	m.log.Debug("asset unloaded", zap.String("path", e.path))
}

// The cache has no removal API, so unloads rebuild it from live entries.
func (m *Manager) rebuildHandleCache() {
	m.handles.Clear()
	for h, e := range m.entries {
		if _, err := m.handles.Register(e.path, h); err != nil {
			m.log.Warn("failed to re-register asset", zap.String("path", e.path), zap.Error(err))
		}
	}
}

// Stats summarizes current bookkeeping.
func (m *Manager) Stats() Stats {
	s := Stats{Loaded: len(m.entries)}
	for _, e := range m.entries {
		s.TotalBytes += len(e.data)
	}
	return s
}
