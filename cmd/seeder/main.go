package main

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/blast-campaigns/internal/config"
	"github.com/mauv0809/blast-campaigns/internal/database"
)

const (
	seed              = 42
	seasonsPerEvent   = 3
	teamsPerSeason    = 24
	playersPerTeam    = 5
	roundsPerDivision = 4
)

var (
	events    = []string{"hpl", "bjl"}
	divisions = []string{"elite", "amateur", "rookie"}
)

// seeder fills a database with a synthetic but consistent campaign history.
type seeder struct {
	tx    *sql.Tx
	faker *gofakeit.Faker
	teams []string
}

func main() {
	log.Info("Starting database seeder...")
	cfg := config.Load()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	startTime := time.Now()
	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	s := &seeder{tx: tx, faker: gofakeit.New(seed)}
	if err := s.run(); err != nil {
		tx.Rollback()
		log.Fatalf("Failed to seed database: %s", err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}
	log.Info("Successfully seeded campaigns", "duration", time.Since(startTime))
}

func (s *seeder) run() error {
	if err := s.seedTeams(teamsPerSeason * 2); err != nil {
		return err
	}
	year := time.Now().Year()
	for _, eventID := range events {
		if err := s.exec(`INSERT OR IGNORE INTO events (event_id, name_en, level) VALUES (?, ?, ?)`,
			eventID, s.faker.Company()+" League", "national"); err != nil {
			return err
		}
		for i := 0; i < seasonsPerEvent; i++ {
			seasonYear := year - (seasonsPerEvent - 1 - i)
			status := "closed"
			if i == seasonsPerEvent-1 {
				status = "ongoing"
			}
			if err := s.seedSeason(eventID, seasonYear, status); err != nil {
				return err
			}
		}
		log.Info("Seeded event", "event_id", eventID, "seasons", seasonsPerEvent)
	}
	return nil
}

func (s *seeder) seedTeams(n int) error {
	for i := 0; i < n; i++ {
		teamID := fmt.Sprintf("team-%03d", i+1)
		if err := s.exec(`INSERT OR IGNORE INTO teams (team_id, canonical_name, club_id) VALUES (?, ?, ?)`,
			teamID, s.faker.Company(), s.faker.City()); err != nil {
			return err
		}
		if s.faker.Number(0, 3) == 0 {
			if err := s.exec(`INSERT INTO team_aliases (team_id, alias_name) VALUES (?, ?)`, teamID, s.faker.Company()); err != nil {
				return err
			}
		}
		for p := 0; p < playersPerTeam; p++ {
			playerID := fmt.Sprintf("%s-p%d", teamID, p+1)
			nickname := s.faker.Username()
			if err := s.exec(`INSERT OR IGNORE INTO players (player_id, nickname, display_name, real_name, birth_year, club_name)
				VALUES (?, ?, ?, ?, ?, ?)`, playerID, nickname, nickname, s.faker.Name(), s.faker.Number(1980, 2008), s.faker.City()); err != nil {
				return err
			}
		}
		s.teams = append(s.teams, teamID)
	}
	return nil
}

func (s *seeder) seedSeason(eventID string, year int, status string) error {
	seasonID := fmt.Sprintf("%s_%d", eventID, year)
	if err := s.exec(`INSERT OR IGNORE INTO seasons (season_id, event_id, name, year, status) VALUES (?, ?, ?, ?, ?)`,
		seasonID, eventID, fmt.Sprintf("%s %d", eventID, year), year, status); err != nil {
		return err
	}

	leaderboards := make(map[string]string, len(divisions))
	for order, key := range divisions {
		leaderboardKey := seasonID + "_" + key
		leaderboards[key] = leaderboardKey
		if err := s.exec(`INSERT OR IGNORE INTO divisions (division_key, season_id, name, leaderboard_key, sort_order) VALUES (?, ?, ?, ?, ?)`,
			key, seasonID, key, leaderboardKey, order+1); err != nil {
			return err
		}
		for r := 1; r <= roundsPerDivision; r++ {
			if err := s.exec(`INSERT OR IGNORE INTO score_components (component_id, leaderboard_key, name, component_type, sort_order) VALUES (?, ?, ?, 'round', ?)`,
				fmt.Sprintf("%s_r%d", leaderboardKey, r), leaderboardKey, fmt.Sprintf("Round %d", r), r); err != nil {
				return err
			}
		}
	}

	teams := append([]string(nil), s.teams...)
	s.faker.ShuffleStrings(teams)
	for i, teamID := range teams[:teamsPerSeason] {
		division := divisions[i%len(divisions)]
		registrationID := uuid.NewString()
		regStatus := "confirmed"
		if s.faker.Number(0, 19) == 0 {
			regStatus = "cancelled"
		}
		if err := s.exec(`INSERT INTO registrations (registration_id, season_id, team_id, division, status) VALUES (?, ?, ?, ?, ?)`,
			registrationID, seasonID, teamID, division, regStatus); err != nil {
			return err
		}
		for p := 0; p < playersPerTeam; p++ {
			if err := s.exec(`INSERT OR IGNORE INTO rosters (season_id, team_id, player_id) VALUES (?, ?, ?)`,
				seasonID, teamID, fmt.Sprintf("%s-p%d", teamID, p+1)); err != nil {
				return err
			}
		}
		if regStatus == "cancelled" {
			continue
		}
		// Ongoing seasons only have the first rounds played.
		played := roundsPerDivision
		if status == "ongoing" {
			played = 2
		}
		for r := 1; r <= played; r++ {
			if err := s.exec(`INSERT INTO team_component_points (registration_id, component_id, points) VALUES (?, ?, ?)`,
				registrationID, fmt.Sprintf("%s_r%d", leaderboards[division], r), float64(s.faker.Number(0, 30))); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *seeder) exec(query string, args ...any) error {
	if _, err := s.tx.Exec(query, args...); err != nil {
		return fmt.Errorf("seeder: %w", err)
	}
	return nil
}
