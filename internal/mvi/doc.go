// Package mvi implements the intent → reducer → state runtime shared by all
// client features.
//
// # Overview
//
// A Store owns one feature's state. Callers submit intents with Handle from
// any goroutine; the store drains them on a single goroutine (an actor), so
// two reducer applications of the same store never interleave.
//
// Each feature supplies:
//  1. a pure Reducer (state, intent) → state;
//  2. a Policy deciding, per intent, what to apply, which asynchronous Task
//     to start and which effects to dispatch.
//
// A Task runs on its own goroutine and returns a Result: a follow-up intent
// plus effects. The result is posted back to the store mailbox, the policy
// handles the follow-up intent, the new state is published, and only then are
// the result effects dispatched.
//
// # Ordering
//
// Within one step, states are published synchronously by Tx.Apply and effects
// queued with Tx.Dispatch are flushed after the policy returns, so effects
// always observe the state they belong to.
//
// # Subscribers
//
// Subscribe callbacks run on the store goroutine in publish order. They must
// not block and must not call Handle on the same store.
package mvi
