package template

import (
	"context"
	"encoding/json"
	"slices"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
	"github.com/KirkDiggler/rpg-roller/internal/errors"
	"github.com/KirkDiggler/rpg-roller/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-roller/internal/redis"
)

const (
	// Key pattern: special_template:{name}
	templateKeyPrefix = "special_template:"
	indexKey          = "special_templates:index"

	errInputNil  = "input is required"
	errNameEmpty = "template name cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for special templates
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a template unless one with the same name exists
func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	record, err := NewRecord(input.Template, r.clock.Now())
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal template %s", record.Name)
	}

	created, err := r.client.SetNX(ctx, r.buildKey(record.Name), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store template %s in Redis", record.Name)
	}
	if !created {
		return nil, errors.AlreadyExistsf("template %s already exists", record.Name).
			WithMeta(errors.MetaName, record.Name)
	}

	if err := r.client.SAdd(ctx, indexKey, record.Name).Err(); err != nil {
		// keep key and index consistent
		_ = r.client.Del(ctx, r.buildKey(record.Name))
		return nil, errors.Wrapf(err, "failed to index template %s", record.Name)
	}

	return &CreateOutput{Record: record}, nil
}

// Get retrieves a template by name
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	data, err := r.client.Get(ctx, r.buildKey(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("template %s not found", input.Name).
				WithMeta(errors.MetaName, input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get template %s from Redis", input.Name)
	}

	record, t, err := decodeRecord(data)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Template: t, Record: record}, nil
}

// Delete removes a template
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	removed, err := r.client.Del(ctx, r.buildKey(input.Name)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete template %s from Redis", input.Name)
	}
	if err := r.client.SRem(ctx, indexKey, input.Name).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to unindex template %s", input.Name)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("template %s not found", input.Name).
			WithMeta(errors.MetaName, input.Name)
	}

	return &DeleteOutput{}, nil
}

// List returns every indexed template sorted by name. Index entries whose
// key has disappeared are skipped.
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	names, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list template index")
	}
	if len(names) == 0 {
		return &ListOutput{Templates: []special.Special{}}, nil
	}
	slices.Sort(names)

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = r.buildKey(name)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load templates from Redis")
	}

	templates := make([]special.Special, 0, len(values))
	for _, v := range values {
		data, ok := v.(string)
		if !ok {
			continue
		}
		_, t, err := decodeRecord(data)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	return &ListOutput{Templates: templates}, nil
}

func decodeRecord(data string) (*Record, special.Special, error) {
	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, special.Special{}, errors.Wrap(err, "failed to unmarshal template")
	}
	t, err := record.Template()
	if err != nil {
		return nil, special.Special{}, err
	}
	return &record, t, nil
}

// buildKey creates the Redis key for a template
func (r *redisRepository) buildKey(name string) string {
	return templateKeyPrefix + name
}
