package matching

import (
	"sort"
	"time"

	"github.com/spigell/resume-matcher/internal/jobs"
	"github.com/spigell/resume-matcher/internal/logger"
	"github.com/spigell/resume-matcher/internal/resume"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// JobMatch is one posting as seen by a candidate, with its denormalized fields and score.
type JobMatch struct {
	JobID          string      `json:"jobId"`
	Title          string      `json:"title"`
	Company        string      `json:"company"`
	Location       string      `json:"location"`
	Salary         jobs.Salary `json:"salary"`
	Type           string      `json:"type"`
	Description    string      `json:"description"`
	Requirements   []string    `json:"requirements"`
	PostedDate     time.Time   `json:"postedDate"`
	MatchScore     int         `json:"matchScore"`
	MatchType      MatchType   `json:"matchType"`
	Compatibility  int         `json:"compatibility"`
	MatchingSkills []string    `json:"matchingSkills"`
	MissingSkills  []string    `json:"missingSkills"`
	ApplicantCount int         `json:"applicantCount"`
}

// Candidate is an analyzed resume owned by a user.
type Candidate struct {
	UserID    string           `json:"userId"`
	UserName  string           `json:"userName"`
	UserEmail string           `json:"userEmail"`
	Analysis  *resume.Analysis `json:"analysis"`
}

// CandidateMatch is one candidate as seen by a recruiter.
type CandidateMatch struct {
	UserID            string    `json:"userId"`
	UserName          string    `json:"userName"`
	UserEmail         string    `json:"userEmail"`
	MatchScore        int       `json:"matchScore"`
	MatchType         MatchType `json:"matchType"`
	MatchingSkills    []string  `json:"matchingSkills"`
	MissingSkills     []string  `json:"missingSkills"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	ATSScore          int       `json:"atsScore"`
}

// Matcher runs the scorer over batches. Output never depends on the number of workers.
type Matcher struct {
	scorer  *Scorer
	workers int
	logger  *zap.Logger
}

type Option func(*Matcher)

func WithConfig(config Config) Option {
	return func(m *Matcher) {
		m.scorer = NewScorer(config)
		if config.Workers > 0 {
			m.workers = config.Workers
		}
	}
}

// WithWorkers scores up to n pairs in parallel. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.workers = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

func New(opts ...Option) *Matcher {
	m := &Matcher{
		scorer:  NewScorer(DefaultConfig()),
		workers: 1,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MatchResumeWithJobs scores the analysis against every active posting, best first.
// Postings with equal scores keep their input order.
func (m *Matcher) MatchResumeWithJobs(analysis *resume.Analysis, postings []*jobs.Posting) []JobMatch {
	active := make([]*jobs.Posting, 0, len(postings))
	for _, p := range postings {
		if p != nil && p.IsActive() {
			active = append(active, p)
		}
	}

	matches := make([]JobMatch, len(active))
	m.each(len(active), func(i int) {
		p := active[i]
		r := m.scorer.Score(analysis, p)

		matches[i] = JobMatch{
			JobID:          p.ID,
			Title:          p.Title,
			Company:        p.Company,
			Location:       p.Location,
			Salary:         p.Salary,
			Type:           p.Type,
			Description:    p.Description,
			Requirements:   p.Requirements,
			PostedDate:     p.CreatedAt,
			MatchScore:     r.MatchScore,
			MatchType:      TypeFor(r.MatchScore),
			Compatibility:  r.MatchScore,
			MatchingSkills: r.MatchingSkills,
			MissingSkills:  r.MissingSkills,
			ApplicantCount: p.ApplicantCount(),
		}

		m.logger.Debug("job scored",
			append(logger.MatchFields("", p.ID), zap.Int("score", r.MatchScore))...)
	})

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	m.logger.Info("matched resume with jobs",
		zap.Int("postings", len(postings)),
		zap.Int("active", len(active)),
	)

	return matches
}

// MatchJobWithResumes scores every candidate against the posting, best first.
// The posting status is not checked.
func (m *Matcher) MatchJobWithResumes(posting *jobs.Posting, candidates []Candidate) []CandidateMatch {
	matches := make([]CandidateMatch, len(candidates))
	m.each(len(candidates), func(i int) {
		c := candidates[i]
		r := m.scorer.Score(c.Analysis, posting)

		match := CandidateMatch{
			UserID:         c.UserID,
			UserName:       c.UserName,
			UserEmail:      c.UserEmail,
			MatchScore:     r.MatchScore,
			MatchType:      TypeFor(r.MatchScore),
			MatchingSkills: r.MatchingSkills,
			MissingSkills:  r.MissingSkills,
		}
		if c.Analysis != nil {
			match.YearsOfExperience = c.Analysis.YearsOfExperience
			match.ATSScore = c.Analysis.ATSScore
		}
		matches[i] = match

		m.logger.Debug("candidate scored",
			append(logger.MatchFields(c.UserID, postingID(posting)), zap.Int("score", r.MatchScore))...)
	})

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	m.logger.Info("matched job with resumes",
		zap.String(logger.FieldJobID, postingID(posting)),
		zap.Int("candidates", len(candidates)),
	)

	return matches
}

// each calls fn for every index in [0, n), spread over the configured workers.
func (m *Matcher) each(n int, fn func(i int)) {
	if m.workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(m.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	// fn cannot fail
	_ = g.Wait()
}

func postingID(p *jobs.Posting) string {
	if p == nil {
		return ""
	}
	return p.ID
}
