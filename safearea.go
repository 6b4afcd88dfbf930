// SPDX-License-Identifier: Unlicense OR MIT

package safearea

import (
	"log/slog"

	"github.com/insetkit/safearea/edge"
	"github.com/insetkit/safearea/internal/platform"
)

// Coordinator installs inset handling on views.
//
// The zero Coordinator is ready to use. It reports the host platform's
// API level and logs to slog.Default.
type Coordinator struct {
	// Platform gates compatibility workarounds. Nil means the host.
	Platform Platform
	// Logger receives debug records of inset updates. Nil means
	// slog.Default.
	Logger *slog.Logger
}

// Option configures Apply.
type Option func(*config)

type config struct {
	edges edge.Mask
	kind  Kind
}

type hostPlatform struct{}

var defaultCoordinator = new(Coordinator)

// Edges selects the edges kept clear of system insets. The default
// is edge.All.
func Edges(m edge.Mask) Option {
	return func(c *config) {
		c.edges = m
	}
}

// As selects the spacing kind adjusted for system insets. The default
// is Padding.
func As(k Kind) Option {
	return func(c *config) {
		c.kind = k
	}
}

// Apply keeps v clear of system insets with the default Coordinator.
func Apply(v View, options ...Option) *Settings {
	return defaultCoordinator.Apply(v, options...)
}

// ForceDispatchInsets makes c deliver insets to each of its children
// with the default Coordinator.
func ForceDispatchInsets(c Container) {
	defaultCoordinator.ForceDispatchInsets(c)
}

// NewSettings is like the package level NewSettings but with the
// platform and logger of c.
func (c *Coordinator) NewSettings(v View, edges edge.Mask, kind Kind) *Settings {
	s := &Settings{
		edges:    edges,
		kind:     kind,
		platform: c.platform(),
		logger:   c.logger(),
	}
	switch kind {
	case Padding:
		s.base = v.Padding()
	case Margin:
		s.base = v.(MarginView).Margins()
	default:
		panic("unknown kind")
	}
	return s
}

// Apply captures the current spacing of v and adjusts it on every
// inset notification delivered to v. The notification is consumed by
// v. Apply replaces any inset listener of v.
func (c *Coordinator) Apply(v View, options ...Option) *Settings {
	cnf := config{edges: edge.All, kind: Padding}
	for _, o := range options {
		o(&cnf)
	}
	s := c.NewSettings(v, cnf.edges, cnf.kind)
	v.SetOnApplyInsets(func(v View, in Insets) Insets {
		s.UpdateInsets(v, in.Rect())
		return in.Consume()
	})
	requestApplyInsetsWhenAttached(v)
	return s
}

// ForceDispatchInsets makes ct deliver every inset notification to each
// of its children, even on API levels where a container consuming the
// notification hides it from its children. It replaces the inset
// listener of ct and does nothing from LevelInsetsDispatch on.
func (c *Coordinator) ForceDispatchInsets(ct Container) {
	if c.platform().APILevel() >= LevelInsetsDispatch {
		return
	}
	ct.SetOnApplyInsets(func(v View, in Insets) Insets {
		g, ok := v.(Container)
		if !ok {
			return in.Consume()
		}
		consumed := false
		for i := 0; i < g.NumChildren(); i++ {
			if g.Child(i).DispatchApplyInsets(in).Consumed() {
				consumed = true
			}
		}
		if consumed {
			return in.Consume()
		}
		return in
	})
}

func (c *Coordinator) platform() Platform {
	if c.Platform != nil {
		return c.Platform
	}
	return hostPlatform{}
}

func (c *Coordinator) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// requestApplyInsetsWhenAttached requests insets for v now if it is
// attached and on its next attach otherwise.
func requestApplyInsetsWhenAttached(v View) {
	if v.Attached() {
		v.RequestApplyInsets()
		return
	}
	fired := false
	v.AddAttachListener(AttachFuncs{
		Attached: func(v View) {
			if fired {
				return
			}
			fired = true
			v.RequestApplyInsets()
		},
	})
}

func (hostPlatform) APILevel() int {
	return platform.Level()
}
