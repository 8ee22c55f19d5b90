package dynamodb_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	cmdddb "github.com/BerryBytes/awskit/cmd/dynamodb"
	awskitddb "github.com/BerryBytes/awskit/internal/dynamodb"
	mock_ddbcmd "github.com/BerryBytes/awskit/internal/mocks/ddbcmd"
	"github.com/BerryBytes/awskit/internal/session"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDeps(t *testing.T) (cmdddb.Dependencies, *mock_ddbcmd.MockTableService) {
	ctrl := gomock.NewController(t)
	svc := mock_ddbcmd.NewMockTableService(ctrl)

	s := session.New()
	s.LoadAWSConfig = func(context.Context, *session.Session) (aws.Config, error) {
		return aws.Config{Region: "us-east-1"}, nil
	}
	return cmdddb.Dependencies{
		Session:    s,
		NewService: func(aws.Config, *zap.SugaredLogger) cmdddb.TableService { return svc },
		Fs:         afero.NewMemMapFs(),
	}, svc
}

func run(deps cmdddb.Dependencies, input string, args ...string) (string, error) {
	cmd := cmdddb.NewDynamoDBCommands(deps)
	var out bytes.Buffer
	cmd.SetIn(bytes.NewBufferString(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGet(t *testing.T) {
	deps, svc := newDeps(t)
	keys := []awskitddb.Item{{"id": "1"}, {"id": "2"}}
	svc.EXPECT().BatchGet(gomock.Any(), "users", keys, []string{"id", "name"}).
		Return([]awskitddb.Item{{"id": "1", "name": "ada"}}, nil)

	out, err := run(deps, "", "get", "users", "-k", `{"id":"1"}`, "-k", `{"id":"2"}`, "-a", "id,name")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1","name":"ada"}`+"\n", out)
}

func TestGet_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no keys", []string{"get", "users"}, "at least one --key is required"},
		{"bad key", []string{"get", "users", "-k", "id=1"}, "invalid key id=1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _ := newDeps(t)
			_, err := run(deps, "", tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestPut(t *testing.T) {
	items := []awskitddb.Item{{"id": "1", "score": float64(3)}, {"id": "2", "tags": []any{"a"}}}
	payload := `[{"id":"1","score":3},{"id":"2","tags":["a"]}]`

	tests := []struct {
		name  string
		args  []string
		input string
	}{
		{"stdin", []string{"put", "users"}, payload},
		{"file", []string{"put", "users", "-f", "/items.json"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, svc := newDeps(t)
			require.NoError(t, afero.WriteFile(deps.Fs, "/items.json", []byte(payload), 0o644))
			svc.EXPECT().BatchPut(gomock.Any(), "users", items).Return(nil)

			out, err := run(deps, tt.input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, "Wrote 2 items to users\n", out)
		})
	}
}

func TestPut_Errors(t *testing.T) {
	boom := errors.New("throttled")
	tests := []struct {
		name  string
		input string
		err   error
		want  string
	}{
		{"not json", "id=1", nil, "failed to parse items"},
		{"empty", "[]", nil, "no items to write"},
		{"service error", `[{"id":"1"}]`, boom, "throttled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, svc := newDeps(t)
			if tt.err != nil {
				svc.EXPECT().BatchPut(gomock.Any(), "users", gomock.Any()).Return(tt.err)
			}
			_, err := run(deps, tt.input, "put", "users")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
