package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// StoredAnalysis is one persisted analysis record
type StoredAnalysis struct {
	ID              uuid.UUID               `json:"id"`
	CandidateName   string                  `json:"candidate_name,omitempty"`
	ResumeFilename  string                  `json:"resume_filename"`
	JDFilename      string                  `json:"jd_filename"`
	Score           int                     `json:"score"`
	LexicalScore    float64                 `json:"lexical_score"`
	SemanticScore   float64                 `json:"semantic_score"`
	CombinedScore   float64                 `json:"combined_score"`
	Verdict         string                  `json:"verdict"`
	MatchedSkills   []string                `json:"matched_skills"`
	MissingSkills   []string                `json:"missing_skills"`
	ImprovementPlan []types.ImprovementItem `json:"improvement_plan"`
	Categories      []types.CategoryResult  `json:"categories"`
	ResumeWordCount int                     `json:"resume_word_count"`
	JDWordCount     int                     `json:"jd_word_count"`
	IsArchived      bool                    `json:"is_archived"`
	CreatedAt       time.Time               `json:"created_at"`
}

// SkillTrend is one row of the trending-skills aggregation
type SkillTrend struct {
	SkillName          string    `json:"skill_name"`
	SkillCategory      string    `json:"skill_category"`
	FrequencyInJDs     int       `json:"frequency_in_jds"`
	FrequencyInResumes int       `json:"frequency_in_resumes"`
	LastSeen           time.Time `json:"last_seen"`
}

// Statistics summarizes all non-archived analyses
type Statistics struct {
	TotalAnalyses int            `json:"total_analyses"`
	AvgScore      float64        `json:"avg_score"`
	MaxScore      int            `json:"max_score"`
	MinScore      int            `json:"min_score"`
	Distribution  map[string]int `json:"score_distribution"`
}

// SaveAnalysis persists a completed analysis, including the raw lexical
// and semantic components and per-category skill data, and returns the
// record ID
func (db *DB) SaveAnalysis(ctx context.Context, res *types.AnalysisResult) (uuid.UUID, error) {
	matched, err := json.Marshal(res.MatchedSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal matched skills: %w", err)
	}
	missing, err := json.Marshal(res.MissingSkills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal missing skills: %w", err)
	}
	plan, err := json.Marshal(res.ImprovementPlan)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal improvement plan: %w", err)
	}
	categories, err := json.Marshal(res.Categories)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal categories: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (
			candidate_name, resume_filename, jd_filename, score,
			lexical_score, semantic_score, combined_score, verdict,
			matched_skills, missing_skills, improvement_plan, categories,
			resume_word_count, jd_word_count, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		res.CandidateName, res.ResumeFilename, res.JDFilename, res.Score,
		res.TextSimilarity.Lexical, res.TextSimilarity.Semantic, res.TextSimilarity.Combined,
		string(res.Verdict), matched, missing, plan, categories,
		res.ResumeWordCount, res.JDWordCount, res.Timestamp,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// History lists stored analyses, newest first
func (db *DB) History(ctx context.Context, limit int, archived bool) ([]StoredAnalysis, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_name, resume_filename, jd_filename, score,
			lexical_score, semantic_score, combined_score, verdict,
			matched_skills, missing_skills, improvement_plan, categories,
			resume_word_count, jd_word_count, is_archived, created_at
		 FROM analyses
		 WHERE is_archived = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		archived, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var history []StoredAnalysis
	for rows.Next() {
		var rec StoredAnalysis
		var matched, missing, plan, categories []byte
		err := rows.Scan(
			&rec.ID, &rec.CandidateName, &rec.ResumeFilename, &rec.JDFilename, &rec.Score,
			&rec.LexicalScore, &rec.SemanticScore, &rec.CombinedScore, &rec.Verdict,
			&matched, &missing, &plan, &categories,
			&rec.ResumeWordCount, &rec.JDWordCount, &rec.IsArchived, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if err := json.Unmarshal(matched, &rec.MatchedSkills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal matched skills: %w", err)
		}
		if err := json.Unmarshal(missing, &rec.MissingSkills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal missing skills: %w", err)
		}
		if err := json.Unmarshal(plan, &rec.ImprovementPlan); err != nil {
			return nil, fmt.Errorf("failed to unmarshal improvement plan: %w", err)
		}
		if err := json.Unmarshal(categories, &rec.Categories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
		}
		history = append(history, rec)
	}
	return history, rows.Err()
}

// Stats aggregates scores across all non-archived analyses
func (db *DB) Stats(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{
		Distribution: map[string]int{"excellent": 0, "good": 0, "average": 0, "poor": 0},
	}

	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*),
			COALESCE(ROUND(AVG(score)::numeric, 2), 0),
			COALESCE(MAX(score), 0),
			COALESCE(MIN(score), 0)
		 FROM analyses WHERE NOT is_archived`,
	).Scan(&stats.TotalAnalyses, &stats.AvgScore, &stats.MaxScore, &stats.MinScore)
	if err != nil {
		return nil, fmt.Errorf("failed to query statistics: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT CASE
			WHEN score >= 80 THEN 'excellent'
			WHEN score >= 60 THEN 'good'
			WHEN score >= 40 THEN 'average'
			ELSE 'poor'
		 END AS bucket, COUNT(*)
		 FROM analyses WHERE NOT is_archived
		 GROUP BY bucket`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query score distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bucket string
		var count int
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, fmt.Errorf("failed to scan distribution row: %w", err)
		}
		stats.Distribution[bucket] = count
	}
	return stats, rows.Err()
}

// UpdateSkillTracking bumps per-skill frequency counters for the skills
// seen in a JD and resume. Categories come from the caller's taxonomy
// lookup; unknown skills keep the 'unknown' category.
func (db *DB) UpdateSkillTracking(ctx context.Context, jdSkills, resumeSkills map[string]string) error {
	batch := &pgx.Batch{}
	for skill, category := range jdSkills {
		batch.Queue(
			`INSERT INTO skill_tracking (skill_name, skill_category, frequency_in_jds, last_seen)
			 VALUES ($1, $2, 1, NOW())
			 ON CONFLICT (skill_name) DO UPDATE SET
				frequency_in_jds = skill_tracking.frequency_in_jds + 1,
				skill_category = EXCLUDED.skill_category,
				last_seen = NOW()`,
			skill, category,
		)
	}
	for skill, category := range resumeSkills {
		batch.Queue(
			`INSERT INTO skill_tracking (skill_name, skill_category, frequency_in_resumes, last_seen)
			 VALUES ($1, $2, 1, NOW())
			 ON CONFLICT (skill_name) DO UPDATE SET
				frequency_in_resumes = skill_tracking.frequency_in_resumes + 1,
				skill_category = EXCLUDED.skill_category,
				last_seen = NOW()`,
			skill, category,
		)
	}

	if err := db.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to update skill tracking: %w", err)
	}
	return nil
}

// TrendingSkills returns the most frequently requested skills across all
// analyzed job descriptions
func (db *DB) TrendingSkills(ctx context.Context, limit int) ([]SkillTrend, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT skill_name, skill_category, frequency_in_jds, frequency_in_resumes, last_seen
		 FROM skill_tracking
		 ORDER BY frequency_in_jds DESC, skill_name
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query trending skills: %w", err)
	}
	defer rows.Close()

	var trends []SkillTrend
	for rows.Next() {
		var t SkillTrend
		if err := rows.Scan(&t.SkillName, &t.SkillCategory, &t.FrequencyInJDs, &t.FrequencyInResumes, &t.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan trending row: %w", err)
		}
		trends = append(trends, t)
	}
	return trends, rows.Err()
}

// ArchiveAnalysis marks an analysis as archived
func (db *DB) ArchiveAnalysis(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `UPDATE analyses SET is_archived = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to archive analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrAnalysisNotFound{ID: id}
	}
	return nil
}

// DeleteAnalysis permanently removes an analysis
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &ErrAnalysisNotFound{ID: id}
	}
	return nil
}

// ErrAnalysisNotFound indicates the analysis record does not exist
type ErrAnalysisNotFound struct {
	ID uuid.UUID
}

func (e *ErrAnalysisNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}
