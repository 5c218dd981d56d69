// Package model contains the database models.
package model
