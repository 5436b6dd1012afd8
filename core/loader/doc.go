// Package loader registers HTTP features with the Fiber app.
//
// A feature is anything that can name itself, say whether it is turned on, and
// mount its routes:
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(rooms.NewFeature(svc))
//	mgr.Register(integrity.NewFeature(store, cfg.Storage, db, logg))
//	if err := mgr.LoadAll(app); err != nil {
//	    return err
//	}
//
// LoadAll mounts features in registration order and stops at the first error.
package loader
