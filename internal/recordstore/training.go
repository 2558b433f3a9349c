package recordstore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Amaspm/driver-management/internal/domain"
)

// Training authoring endpoints: modules plus their contents and quizzes,
// filterable by module. Plain CRUD passthrough.

func (c *Client) ListTrainingModules(ctx context.Context, cred Credential) ([]domain.TrainingModule, error) {
	var out []domain.TrainingModule
	if err := c.do(ctx, http.MethodGet, "/training-modules/", cred, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTrainingModule(ctx context.Context, cred Credential, id int64) (domain.TrainingModule, error) {
	var out domain.TrainingModule
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/training-modules/%d/", id), cred, nil, &out)
	return out, err
}

func (c *Client) CreateTrainingModule(ctx context.Context, cred Credential, m domain.TrainingModule) (domain.TrainingModule, error) {
	var out domain.TrainingModule
	err := c.do(ctx, http.MethodPost, "/training-modules/", cred, m, &out)
	return out, err
}

func (c *Client) UpdateTrainingModule(ctx context.Context, cred Credential, id int64, m domain.TrainingModule) (domain.TrainingModule, error) {
	var out domain.TrainingModule
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/training-modules/%d/", id), cred, m, &out)
	return out, err
}

func (c *Client) DeleteTrainingModule(ctx context.Context, cred Credential, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/training-modules/%d/", id), cred, nil, nil)
}

func (c *Client) ListTrainingContents(ctx context.Context, cred Credential, moduleID int64) ([]domain.TrainingContent, error) {
	path := "/training-contents/"
	if moduleID > 0 {
		path = fmt.Sprintf("/training-contents/?module_id=%d", moduleID)
	}
	var out []domain.TrainingContent
	if err := c.do(ctx, http.MethodGet, path, cred, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTrainingContent(ctx context.Context, cred Credential, tc domain.TrainingContent) (domain.TrainingContent, error) {
	var out domain.TrainingContent
	err := c.do(ctx, http.MethodPost, "/training-contents/", cred, tc, &out)
	return out, err
}

func (c *Client) UpdateTrainingContent(ctx context.Context, cred Credential, id int64, tc domain.TrainingContent) (domain.TrainingContent, error) {
	var out domain.TrainingContent
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/training-contents/%d/", id), cred, tc, &out)
	return out, err
}

func (c *Client) DeleteTrainingContent(ctx context.Context, cred Credential, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/training-contents/%d/", id), cred, nil, nil)
}

func (c *Client) ListTrainingQuizzes(ctx context.Context, cred Credential, moduleID int64) ([]domain.TrainingQuiz, error) {
	path := "/training-quizzes/"
	if moduleID > 0 {
		path = fmt.Sprintf("/training-quizzes/?module_id=%d", moduleID)
	}
	var out []domain.TrainingQuiz
	if err := c.do(ctx, http.MethodGet, path, cred, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTrainingQuiz(ctx context.Context, cred Credential, q domain.TrainingQuiz) (domain.TrainingQuiz, error) {
	var out domain.TrainingQuiz
	err := c.do(ctx, http.MethodPost, "/training-quizzes/", cred, q, &out)
	return out, err
}

func (c *Client) UpdateTrainingQuiz(ctx context.Context, cred Credential, id int64, q domain.TrainingQuiz) (domain.TrainingQuiz, error) {
	var out domain.TrainingQuiz
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/training-quizzes/%d/", id), cred, q, &out)
	return out, err
}

func (c *Client) DeleteTrainingQuiz(ctx context.Context, cred Credential, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/training-quizzes/%d/", id), cred, nil, nil)
}
