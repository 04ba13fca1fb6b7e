package notification

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"

	"github.com/Yoavga19/barber/models"
	"github.com/Yoavga19/barber/utils"
)

// EmailNotificationService emails the owner one plain-text message per
// confirmed appointment, via AWS SESv2.
type EmailNotificationService struct {
	client *sesv2.Client
	sender string
	owner  string
}

// NewEmailNotificationService initializes an SES-backed notifier using static
// credentials and region.
func NewEmailNotificationService(accessKeyID, secretAccessKey, region, sender, owner string) (*EmailNotificationService, error) {
	if accessKeyID == "" || secretAccessKey == "" || region == "" {
		return nil, fmt.Errorf("ses credentials and region are required")
	}
	if sender == "" || owner == "" {
		return nil, fmt.Errorf("ses sender and owner address are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &EmailNotificationService{
		client: sesv2.NewFromConfig(awsCfg),
		sender: sender,
		owner:  owner,
	}, nil
}

// NotifyAppointment delivers the new-appointment email to the owner.
func (s *EmailNotificationService) NotifyAppointment(ctx context.Context, appt *models.Appointment) error {
	subject := fmt.Sprintf("New Appointment - %s", appt.CustomerName)
	body := fmt.Sprintf(`
New appointment at HairBoss:
Name: %s
Phone: %s
Date: %s
Time: %s
Service: %s
Price: %d₪
`, appt.CustomerName, appt.Phone, appt.Date, appt.Time, appt.Service, appt.Price)

	input := &sesv2.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{s.owner},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
		FromEmailAddress: aws.String(s.sender),
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("send appointment email: %w", err)
	}

	utils.GetLogger().Info("Appointment email sent", zap.String("ref", appt.Ref))
	return nil
}
