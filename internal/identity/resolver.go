package identity

import (
	"context"
	"errors"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

// Resolver maps the opaque caller identity supplied by the transport layer
// to the caller's verified email.
type Resolver interface {
	ResolveEmail(ctx context.Context, callerID string) (string, error)
}

// CognitoResolver resolves emails through the user pool's AdminGetUser API.
type CognitoResolver struct {
	client     *cognitoidentityprovider.Client
	userPoolID string
}

func NewCognitoResolver(awsCfg awssdk.Config, userPoolID string) *CognitoResolver {
	return &CognitoResolver{
		client:     cognitoidentityprovider.NewFromConfig(awsCfg),
		userPoolID: userPoolID,
	}
}

func (r *CognitoResolver) ResolveEmail(ctx context.Context, callerID string) (string, error) {
	out, err := r.client.AdminGetUser(ctx, &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: awssdk.String(r.userPoolID),
		Username:   awssdk.String(callerID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up user %q: %w", callerID, err)
	}
	for _, attr := range out.UserAttributes {
		if awssdk.ToString(attr.Name) == "email" {
			return awssdk.ToString(attr.Value), nil
		}
	}
	return "", errors.New("user has no email attribute")
}
