package notification

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
)

const (
	subjectTemplate = "Your work abroad application %s has been received"
	bodyTemplate    = "Dear %s,\n\n" +
		"Thank you for applying through the Work Abroad programme. Your application " +
		"has been received and assigned the reference number %s. Keep this number " +
		"for all future correspondence.\n\n" +
		"We will email you with further instructions once your application has been reviewed.\n\n" +
		"Work Abroad Team"
)

// sesAPI is the slice of the SES client the dispatcher needs; tests substitute it.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESDispatcher sends confirmation email through Amazon SES.
type SESDispatcher struct {
	client sesAPI
	sender string
}

// NewSES constructs an SES-backed dispatcher using the default AWS credential chain.
func NewSES(ctx context.Context, region, sender string) (*SESDispatcher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESDispatcher{client: ses.NewFromConfig(cfg), sender: sender}, nil
}

// NewSESWithClient injects an SES client; used by tests.
func NewSESWithClient(client sesAPI, sender string) *SESDispatcher {
	return &SESDispatcher{client: client, sender: sender}
}

func (d *SESDispatcher) Send(ctx context.Context, to Contact, number id.ApplicationNumber) error {
	input := &ses.SendEmailInput{
		Source: aws.String(d.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to.Email},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(fmt.Sprintf(subjectTemplate, number)),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(fmt.Sprintf(bodyTemplate, to.Name, number)),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	if _, err := d.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}
