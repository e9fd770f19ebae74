package grammar

import "github.com/dkowalik/spamatch/model"

// Input is the fully parsed, validated instance handed to the catalog and
// matching packages. Construct it only via Parse.
type Input struct {
	Students    []model.Student
	Topics      map[model.TopicID]model.Topic
	Supervisors []model.Supervisor
}

// Option configures Parse.
type Option func(*options)

type options struct {
	strict bool
	infer  ProgramInferrer
}

// WithStrictPreferenceLength enforces exactly model.MaxPreferences
// preferences per student instead of the default [1,model.MaxPreferences]
// range (spec.md §9 Q2).
func WithStrictPreferenceLength(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithProgramInferrer overrides the default program inferrer. A nil value
// is a no-op (keeps whatever was set before, or the default).
func WithProgramInferrer(infer ProgramInferrer) Option {
	return func(o *options) {
		if infer != nil {
			o.infer = infer
		}
	}
}

// Parse validates the three raw input streams together and returns an
// Input on success, or a non-nil ValidationErrors aggregate on any syntax
// or semantic failure. Per spec.md §7, the matching engine must never be
// invoked when this returns a non-nil error.
func Parse(studentsSrc, topicsSrc, supervisorsSrc string, opts ...Option) (*Input, error) {
	cfg := options{infer: NewDefaultProgramInferrer()}
	for _, opt := range opts {
		opt(&cfg)
	}

	var all ValidationErrors

	topics, topicErrs := ParseTopics(topicsSrc)
	all = append(all, topicErrs...)

	supervisors, supErrs := ParseSupervisors(supervisorsSrc, topics)
	all = append(all, supErrs...)

	students, stuErrs := ParseStudents(studentsSrc, topics, cfg.infer, cfg.strict)
	all = append(all, stuErrs...)

	if all.HasErrors() {
		return nil, all
	}

	return &Input{Students: students, Topics: topics, Supervisors: supervisors}, nil
}
