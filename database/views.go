package database

import "gorm.io/gorm"

// View DDL lives here, not in the migration files, so that the server can
// re-create the views at startup against any schema version and tests can
// install them on a fresh sqlite database. The SQL sticks to the portable
// subset accepted by both MySQL and sqlite.

// EngineAvailabilityView derives est_disponible for every engine, in
// priority order: archived, denormalized shipment pointer, junction row.
// The marque/energie joins reproduce the legacy base's placeholder
// mapping (type id vs brand id, composition code vs energy id); they are
// kept verbatim until the real mapping is confirmed.
const EngineAvailabilityView = `
CREATE VIEW v_moteurs_dispo AS
SELECT
  m.*,
  mar.nom_marque AS marque,
  en.nom_energie AS energie,
  SUBSTR(r.date_achat, 1, 4) AS type_annee,
  CASE
    WHEN m.archiver = true THEN 0
    WHEN m.n_expedition IS NOT NULL THEN 0
    WHEN EXISTS (
      SELECT 1 FROM tbl_expeditions_moteurs em WHERE em.n_moteur = m.n_moteur
    ) THEN 0
    ELSE 1
  END AS est_disponible
FROM tbl_moteurs m
LEFT JOIN tbl_receptions r ON r.n_reception = m.num_reception
LEFT JOIN tbl_marques mar ON mar.n_marque = m.n_type_moteur
LEFT JOIN tbl_energie en ON en.n_energie = m.compo_moteur
`

// GearboxAvailabilityView: available iff in stock and not sold; vendu may
// be NULL in legacy rows, which counts as not sold.
const GearboxAvailabilityView = `
CREATE VIEW v_boites_dispo AS
SELECT
  b.*,
  CASE
    WHEN b.stock = true AND (b.vendu IS NULL OR b.vendu = false) THEN 1
    ELSE 0
  END AS est_disponible
FROM tbl_boites b
`

// EnsureViews drops and re-creates the two availability views, then runs
// a count over each registered view model so broken DDL fails here rather
// than on the first read.
func EnsureViews(db *gorm.DB) error {
	stmts := []string{
		"DROP VIEW IF EXISTS v_moteurs_dispo",
		EngineAvailabilityView,
		"DROP VIEW IF EXISTS v_boites_dispo",
		GearboxAvailabilityView,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	for _, model := range ViewModels() {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			return err
		}
	}
	return nil
}
