// Package models contains the GORM persistence models and their
// conversions to and from domain entities. Table and column names are
// part of the storage contract and must stay in sync with the SQL
// migration history.
package models
