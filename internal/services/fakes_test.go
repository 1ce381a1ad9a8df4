package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/collabster/backend/internal/models"
	"github.com/collabster/backend/internal/utils"
)

type fakeProfileRepo struct {
	byID    map[string]*models.Profile
	order   []string
	updates []map[string]any
	listErr error
}

func newFakeProfileRepo(profiles ...models.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{byID: map[string]*models.Profile{}}
	for i := range profiles {
		p := profiles[i]
		r.byID[p.UserID] = &p
		r.order = append(r.order, p.UserID)
	}
	return r
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*models.Profile, error) {
	p, ok := r.byID[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p *models.Profile) error {
	if _, ok := r.byID[p.UserID]; !ok {
		r.order = append(r.order, p.UserID)
	}
	cp := *p
	r.byID[p.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) UpdateFields(_ context.Context, userID string, changes map[string]any) error {
	p, ok := r.byID[userID]
	if !ok {
		return utils.ErrNotFound
	}
	r.updates = append(r.updates, changes)
	for k, v := range changes {
		switch k {
		case "name":
			p.Name = v.(string)
		case "role":
			p.Role = v.(string)
		case "city":
			p.City = v.(string)
		case "photo":
			p.Photo = v.(string)
		case "about":
			p.About = v.(string)
		case "phone":
			p.Phone = v.(string)
		case "tags":
			p.Tags = v.(pq.StringArray)
		case "portfolio":
			p.Portfolio = v.(pq.StringArray)
		case "updated_at":
			p.UpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (r *fakeProfileRepo) List(_ context.Context, limit int, excludeUserID string) ([]models.Profile, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Profile, 0, len(r.order))
	for _, id := range r.order {
		if id == excludeUserID {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, *r.byID[id])
	}
	return out, nil
}

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string][]byte{}} }

func (c *fakeCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

type fakeHandoffRepo struct {
	byToken map[string]*models.Handoff
}

func newFakeHandoffRepo() *fakeHandoffRepo {
	return &fakeHandoffRepo{byToken: map[string]*models.Handoff{}}
}

func (r *fakeHandoffRepo) Put(_ context.Context, h *models.Handoff) error {
	cp := *h
	r.byToken[h.Token] = &cp
	return nil
}

func (r *fakeHandoffRepo) Take(_ context.Context, token string) (*models.Handoff, error) {
	h, ok := r.byToken[token]
	if !ok {
		return nil, utils.ErrNotFound
	}
	delete(r.byToken, token)
	return h, nil
}

type fakeUploader struct {
	calls []string
	err   error
	// failOn marks object name substrings that should fail
	failOn string
}

func (u *fakeUploader) Upload(_ context.Context, objectName, _ string, r io.Reader) (string, error) {
	if r != nil {
		_, _ = io.Copy(io.Discard, r)
	}
	if u.err != nil {
		return "", u.err
	}
	if u.failOn != "" && strings.Contains(objectName, u.failOn) {
		return "", fmt.Errorf("upload of %s refused", objectName)
	}
	u.calls = append(u.calls, objectName)
	return "https://storage.googleapis.com/test-bucket/" + objectName, nil
}

type fakeRemover struct {
	removed []string
	err     error
}

func (r *fakeRemover) Remove(_ context.Context, publicURL string) error {
	if r.err != nil {
		return r.err
	}
	r.removed = append(r.removed, publicURL)
	return nil
}

type fakeAccountRepo struct {
	byID    map[string]*models.Account
	byEmail map[string]*models.Account
}

func newFakeAccountRepo(accounts ...models.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{byID: map[string]*models.Account{}, byEmail: map[string]*models.Account{}}
	for i := range accounts {
		a := accounts[i]
		r.byID[a.ID] = &a
		r.byEmail[a.Email] = &a
	}
	return r
}

func (r *fakeAccountRepo) Create(_ context.Context, a *models.Account) error {
	if _, ok := r.byEmail[a.Email]; ok {
		return utils.ErrEmailExists
	}
	cp := *a
	r.byID[a.ID] = &cp
	r.byEmail[a.Email] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id string) (*models.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) TouchSignIn(_ context.Context, id string, at time.Time) error {
	if a, ok := r.byID[id]; ok {
		a.LastSignInAt = at
	}
	return nil
}
