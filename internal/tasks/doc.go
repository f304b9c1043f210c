// Package tasks holds the task model and its persistence.
//
// # Storage
//
// A project keeps its tasks in the .tisk directory. Two backends exist:
//
//   - file (default): one YAML file per task, named <id>.yaml, written
//     atomically through a temporary file.
//
//   - sqlite: a tasks.db database with a tasks table and a notes table.
//
// A task file looks like:
//
//	id: 3
//	name: write the docs
//	status: Open
//	created_at: 2024-01-05T10:00:00Z
//	priority: 2
//	notes:
//	  - id: 0b7e3c1e-8f0e-4c55-9d39-5a8f1b0c6f21
//	    created_at: 2024-01-05T10:05:00Z
//	    note: start with the table package
//
// created_at, priority and notes may be omitted; they default to the load
// time, 0 and no notes.
//
// # Checkout
//
// The .checkout file holds the decimal ID of the task that note commands
// apply to when no ID is given. It has no locking; the last writer wins.
//
// # Usage
//
//	store, err := tasks.OpenStore(dir, cfg.Storage.Backend, cfg.Storage.Database)
//	list, err := store.Load(ctx)
//	id := list.Add("write the docs", 1)
//	_, err = store.Save(ctx, list)
package tasks
