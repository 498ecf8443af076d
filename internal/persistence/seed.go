package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// SeedSampleData wipes the catalog tables and loads a small demo data set.
// Accounts are untouched; only universities, textbooks, topics, courses and
// their dependents are replaced. Callers gate this behind the admin role and a
// non-production environment.
func SeedSampleData(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		return fmt.Errorf("no postgres pool available")
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		const wipe = `
        TRUNCATE enrollments, contents, course_instructors, courses, topics, textbooks, universities
        RESTART IDENTITY CASCADE`
		if _, err := tx.Exec(ctx, wipe); err != nil {
			return fmt.Errorf("wipe catalog: %w", err)
		}

		const insertUniversities = `
        INSERT INTO universities (name, country)
        VALUES ('Riga Technical University', 'Latvia'),
               ('Open Web Institute', 'Estonia')
        RETURNING id`
		rows, err := tx.Query(ctx, insertUniversities)
		if err != nil {
			return fmt.Errorf("seed universities: %w", err)
		}
		var universityIDs []string
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			universityIDs = append(universityIDs, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		var textbookID string
		const insertTextbook = `
        INSERT INTO textbooks (title, author)
        VALUES ('Designing Data-Intensive Applications', 'Martin Kleppmann')
        RETURNING id`
		if err := tx.QueryRow(ctx, insertTextbook).Scan(&textbookID); err != nil {
			return fmt.Errorf("seed textbook: %w", err)
		}

		const insertTopics = `
        INSERT INTO topics (name)
        VALUES ('Distributed Systems'), ('Databases'), ('Security'), ('Web Development')`
		if _, err := tx.Exec(ctx, insertTopics); err != nil {
			return fmt.Errorf("seed topics: %w", err)
		}

		const insertCourses = `
        INSERT INTO courses (name, description, program_type, duration_weeks, university_id, textbook_id)
        VALUES ('Distributed Systems', 'Consensus, replication, partitioning.', 'ONLINE', 12, $1, $2),
               ('Databases', 'Relational modeling and query engines.', 'HYBRID', 10, $1, $2),
               ('Web Security', 'Session handling and access control.', 'SELF_PACED', 6, $3, NULL)`
		if _, err := tx.Exec(ctx, insertCourses, universityIDs[0], textbookID, universityIDs[1]); err != nil {
			return fmt.Errorf("seed courses: %w", err)
		}

		logger.Info("sample data seeded",
			zap.Int("universities", len(universityIDs)),
			zap.Int("courses", 3))
		return nil
	})
}
