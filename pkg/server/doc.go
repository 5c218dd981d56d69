// Package server wires the HTTP surface over the association engine.
package server
