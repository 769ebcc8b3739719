// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background machinery of the refresher:
// the single-slot [RetryScheduler] and the [Workers] aggregate that stops
// every background worker on shutdown.
package workers

// Worker is the interface implemented by any background worker.
//
// Stop must cancel pending work and block until work already dispatched has
// returned. Calling Stop more than once is allowed.
type Worker interface {
	Stop()
}
