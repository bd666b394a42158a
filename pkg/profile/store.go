/*****************************************************************************************************************/

//	@package	optics/profile

/*****************************************************************************************************************/

// Package profile persists named aspheric.Profile prescriptions to a SQLite
// database via gorm, so a CLI session (or a batch run) can save a surface it
// designed and reload it by name later.
package profile

/*****************************************************************************************************************/

import (
	"errors"
	"fmt"

	"github.com/claude-module/optics/pkg/aspheric"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*****************************************************************************************************************/

// record is the gorm row backing a saved aspheric.Profile. Coef is flattened to
// ten columns rather than a single JSON blob so the stored coefficients remain
// queryable and migratable column by column.
type record struct {
	Name      string `gorm:"primaryKey"`
	Radius    float64
	Conic     float64
	Coef0     float64
	Coef1     float64
	Coef2     float64
	Coef3     float64
	Coef4     float64
	Coef5     float64
	Coef6     float64
	Coef7     float64
	Coef8     float64
	Coef9     float64
	ModeOdd   bool
	Semidia   float64
}

/*****************************************************************************************************************/

func (record) TableName() string { return "aspheric_profiles" }

/*****************************************************************************************************************/

// ErrNotFound is returned by Load when no profile with the given name exists.
var ErrNotFound = errors.New("profile: not found")

/*****************************************************************************************************************/

// Store wraps a gorm.DB open on a SQLite file holding aspheric_profiles rows.
type Store struct {
	db *gorm.DB
}

/*****************************************************************************************************************/

// Open opens (creating if necessary) the SQLite database at path and ensures
// the aspheric_profiles table is migrated.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("profile: open %q: %w", path, err)
	}

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("profile: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

/*****************************************************************************************************************/

func toRecord(name string, p aspheric.Profile) record {
	return record{
		Name:    name,
		Radius:  p.Radius,
		Conic:   p.Conic,
		Coef0:   p.Coef[0],
		Coef1:   p.Coef[1],
		Coef2:   p.Coef[2],
		Coef3:   p.Coef[3],
		Coef4:   p.Coef[4],
		Coef5:   p.Coef[5],
		Coef6:   p.Coef[6],
		Coef7:   p.Coef[7],
		Coef8:   p.Coef[8],
		Coef9:   p.Coef[9],
		ModeOdd: p.ModeOdd,
		Semidia: p.Semidia,
	}
}

/*****************************************************************************************************************/

func fromRecord(r record) aspheric.Profile {
	return aspheric.Profile{
		Radius:  r.Radius,
		Conic:   r.Conic,
		Coef:    [10]float64{r.Coef0, r.Coef1, r.Coef2, r.Coef3, r.Coef4, r.Coef5, r.Coef6, r.Coef7, r.Coef8, r.Coef9},
		ModeOdd: r.ModeOdd,
		Semidia: r.Semidia,
	}
}

/*****************************************************************************************************************/

// Save upserts p under name, overwriting any existing profile of the same name.
func (s *Store) Save(name string, p aspheric.Profile) error {
	r := toRecord(name, p)
	return s.db.Save(&r).Error
}

/*****************************************************************************************************************/

// Load returns the profile saved under name, or ErrNotFound if none exists.
func (s *Store) Load(name string) (aspheric.Profile, error) {
	var r record

	err := s.db.First(&r, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return aspheric.Profile{}, ErrNotFound
	}
	if err != nil {
		return aspheric.Profile{}, err
	}

	return fromRecord(r), nil
}

/*****************************************************************************************************************/

// List returns the names of every saved profile, sorted by name.
func (s *Store) List() ([]string, error) {
	var rows []record

	if err := s.db.Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}

	return names, nil
}

/*****************************************************************************************************************/

// Delete removes the profile saved under name. It is not an error if no such
// profile exists.
func (s *Store) Delete(name string) error {
	return s.db.Delete(&record{}, "name = ?", name).Error
}

/*****************************************************************************************************************/

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

/*****************************************************************************************************************/
