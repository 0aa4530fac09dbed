package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"insightx/internal/database"
)

var jobTitles = []string{
	"Junior Clerk",
	"Data Entry Operator",
	"Field Mobilizer",
	"Assistant Employment Officer",
	"IT Assistant",
	"MIS Executive",
	"Block Coordinator",
	"Helpdesk Executive",
	"Apprentice - IT Support",
	"Junior Assistant (Accounts)",
	"Computer Operator",
	"Community Facilitator",
	"Career Counsellor",
	"District Coordinator",
	"Social Media Assistant",
	"Lab Technician",
	"Library Assistant",
}

var departments = []string{
	"Govt of Punjab - Department of Revenue",
	"Govt of Punjab - PGRKAM Project",
	"Govt of Punjab - Skill Development Mission",
	"Govt of Punjab - Education Department",
	"Govt of Punjab - Rural Development",
	"Govt of Punjab - Health Department",
	"Govt of Punjab - Finance Department",
	"Govt of Punjab - eGovernance Cell",
	"District Bureau of Employment & Enterprise",
}

var districts = []string{
	"Amritsar", "Barnala", "Bathinda", "Faridkot", "Fatehgarh Sahib",
	"Fazilka", "Ferozepur", "Gurdaspur", "Hoshiarpur", "Jalandhar",
	"Kapurthala", "Ludhiana", "Mansa", "Moga", "Mohali", "Muktsar",
	"Pathankot", "Patiala", "Rupnagar", "Sangrur", "SBS Nagar", "Tarn Taran",
}

var skillTags = []string{
	"Typing", "MS Office", "Excel", "PowerPoint", "Word",
	"Data Entry", "Data Analysis", "SQL", "Tally", "Accounting",
	"Communication", "Counselling", "Customer Support", "Phone Handling",
	"Email Support", "Field Work", "Reporting", "Documentation",
	"Computer Basics", "Hardware Support", "Networking",
	"English", "Hindi", "Punjabi", "Teamwork", "Time Management",
	"Problem Solving",
}

// JobsSeeder populates demo openings in the public-employment style of the
// original dataset. Count <= 0 seeds the default batch.
type JobsSeeder struct {
	Count int
	Rand  *rand.Rand
}

func (JobsSeeder) Name() string { return "jobs" }

func (s JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "company", "location", "skills"); err != nil {
		return err
	}

	count := s.Count
	if count <= 0 {
		count = 500
	}
	rng := s.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i := 0; i < count; i++ {
		title := jobTitles[rng.Intn(len(jobTitles))]
		dept := departments[rng.Intn(len(departments))]
		district := districts[rng.Intn(len(districts))]

		if _, err := tx.Exec(ctx,
			`INSERT INTO jobs (title, company, location, skills) VALUES ($1, $2, $3, $4)`,
			title, dept, district, randomSkillCSV(rng),
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// randomSkillCSV samples 4 to 8 distinct tags, sorted, comma-joined.
func randomSkillCSV(rng *rand.Rand) string {
	k := 4 + rng.Intn(5)
	idx := rng.Perm(len(skillTags))[:k]

	picked := make([]string, 0, k)
	for _, i := range idx {
		picked = append(picked, skillTags[i])
	}
	sort.Strings(picked)
	return strings.Join(picked, ",")
}
