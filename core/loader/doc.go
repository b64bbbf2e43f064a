// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface: a name, an enabled switch and
// route registration. The Manager keeps registered features and mounts the
// enabled ones, in registration order, with LoadAll.
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(favorite.NewFeature(svc, logg))
//	if err := mgr.LoadAll(app); err != nil { ... }
package loader
