package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/aserravalle/travelling-salesman-backend/internal/ports"
)

// SESNotifier delivers contact messages to the operators' inbox via
// Amazon SES.
type SESNotifier struct {
	client *ses.Client
	from   string
	to     string
}

func NewSESNotifier(ctx context.Context, region, from, to string) (*SESNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("new ses notifier: load aws config: %w", err)
	}
	return &SESNotifier{client: ses.NewFromConfig(cfg), from: from, to: to}, nil
}

func (n *SESNotifier) SendContactMessage(ctx context.Context, msg ports.ContactMessage) error {
	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s",
		msg.Name, msg.Email, msg.PhoneNumber, msg.Message)

	input := &ses.SendEmailInput{
		Source: aws.String(n.from),
		Destination: &types.Destination{
			ToAddresses: []string{n.to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String("Contact form message from " + msg.Name)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	}

	if _, err := n.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}
	return nil
}
