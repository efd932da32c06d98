// Package models defines the persisted market documents.
package models
