package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"calremind/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                    string
	accountActivationTemplate string
	accountActivationUrl      url.URL
}

func NewEmailSender(
	awsConfig aws.Config,
	sender string,
	accountActivationTemplate string,
	accountActivationUrl url.URL,
) *EmailSender {
	return &EmailSender{
		ses:                       ses.NewFromConfig(awsConfig),
		sender:                    sender,
		accountActivationTemplate: accountActivationTemplate,
		accountActivationUrl:      accountActivationUrl,
	}
}

func (s *EmailSender) SendActivationToken(ctx context.Context, u user.User) error {
	if !u.ActivationToken.IsPresent {
		return errors.New("user activation token is not defined")
	}
	if u.Email == "" {
		return errors.New("user email is not defined")
	}

	templateParamsBytes, err := json.Marshal(
		accountActivationTemplateParams{
			ActivationCode: string(u.ActivationToken.Value),
			ActivationUrl:  s.accountActivationUrl.String(),
		},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	email := string(u.Email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Template:     &s.accountActivationTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

type accountActivationTemplateParams struct {
	ActivationCode string `json:"activationCode"`
	ActivationUrl  string `json:"activationUrl"`
}
