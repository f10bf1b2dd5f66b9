package roster

import (
	"context"
	"strings"

	apperrors "github.com/paletogarage/auth-gateway/internal/errors"
	"github.com/rs/zerolog/log"
)

const (
	headerMarkerName = "Prénom / Nom"
	headerMarkerID   = "ID Unique"

	defaultName  = "Inconnu"
	defaultGrade = "Aucun"
)

// Fixed offsets of the canonical sheet layout, used when a column cannot be
// resolved from the header row by name.
const (
	colEmployeeID = 1
	colName       = 2
	colRIB        = 3
	colGrade      = 4
	colPhone      = 5
	colDiscordID  = 6
	colEmail      = 8
)

// columns holds the resolved cell index for each named field.
type columns struct {
	employeeID int
	name       int
	rib        int
	grade      int
	phone      int
	discordID  int
	email      int
}

// Lookup resolves a Discord user id to an employee Record against a Source.
type Lookup struct {
	source Source
}

func New(source Source) *Lookup {
	return &Lookup{source: source}
}

// FindByDiscordID fetches the full roster and scans rows below the header for
// an exact (trimmed) match on the Discord id column. The first matching row
// wins; duplicates are not rejected.
//
// A fetch failure and an absent user both surface as unresolved to the caller,
// but under distinct sentinels so the gateway can log which one happened.
func (l *Lookup) FindByDiscordID(ctx context.Context, discordID string) (Record, error) {
	// An empty id would "match" the first row with a blank id cell
	if discordID == "" {
		return Record{}, apperrors.ErrRecordNotFound
	}

	rows, err := l.source.Values(ctx)
	if err != nil {
		return Record{}, apperrors.Wrapf(apperrors.ErrRosterUnavailable, "roster fetch: %v", err)
	}

	headerIdx := headerIndex(rows)
	if headerIdx < 0 {
		log.Warn().Msg("roster header row not found")
		return Record{}, apperrors.ErrHeaderNotFound
	}

	cols := resolveColumns(rows[headerIdx])

	for _, row := range rows[headerIdx+1:] {
		if strings.TrimSpace(cell(row, cols.discordID)) != discordID {
			continue
		}
		return recordFromRow(row, cols), nil
	}

	return Record{}, apperrors.ErrRecordNotFound
}

// headerIndex returns the index of the first row containing either header
// marker, or -1 when the roster is malformed.
func headerIndex(rows [][]string) int {
	for i, row := range rows {
		for _, c := range row {
			if strings.Contains(c, headerMarkerName) || strings.Contains(c, headerMarkerID) {
				return i
			}
		}
	}
	return -1
}

// resolveColumns maps fields to cell indexes by header name, keeping the fixed
// offsets for any column the header does not name. Behaviour is unchanged for
// the canonical sheet shape; renamed-but-reordered sheets still resolve.
func resolveColumns(header []string) columns {
	cols := columns{
		employeeID: colEmployeeID,
		name:       colName,
		rib:        colRIB,
		grade:      colGrade,
		phone:      colPhone,
		discordID:  colDiscordID,
		email:      colEmail,
	}

	for i, c := range header {
		switch {
		case strings.Contains(c, headerMarkerName):
			cols.name = i
		case strings.Contains(c, headerMarkerID):
			cols.discordID = i
		case strings.Contains(c, "Matricule"):
			cols.employeeID = i
		case strings.Contains(c, "RIB"):
			cols.rib = i
		case strings.Contains(c, "Grade"):
			cols.grade = i
		case strings.Contains(c, "Téléphone"), strings.Contains(c, "Tel"):
			cols.phone = i
		case strings.Contains(c, "Gmail"), strings.Contains(c, "Email"):
			cols.email = i
		}
	}

	return cols
}

func recordFromRow(row []string, cols columns) Record {
	return Record{
		EmployeeID: cell(row, cols.employeeID),
		Name:       cellOrDefault(row, cols.name, defaultName),
		Grade:      cellOrDefault(row, cols.grade, defaultGrade),
		RIB:        cell(row, cols.rib),
		Phone:      cell(row, cols.phone),
		DiscordID:  cell(row, cols.discordID),
		Email:      cell(row, cols.email),
	}
}

// cell returns the trimmed cell at idx, or "" when the row is too short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cellOrDefault(row []string, idx int, def string) string {
	if v := cell(row, idx); v != "" {
		return v
	}
	return def
}
