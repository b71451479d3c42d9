package utils

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var (
	sesClient *ses.Client
	sesOnce   sync.Once
)

func initSES() {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		slog.Error("AWS config load failed, email disabled", "err", err)
		return
	}
	sesClient = ses.NewFromConfig(cfg)
}

// sendEmail delivers via SES. A missing SES_EMAIL disables email entirely,
// so local setups run without AWS credentials.
func sendEmail(to string, subject string, body string) error {
	source := os.Getenv("SES_EMAIL")
	if source == "" {
		return nil
	}
	sesOnce.Do(initSES)
	if sesClient == nil {
		return nil
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(source),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		slog.Error("SES send failed", "err", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

func SendWelcomeEmail(to string, name string) error {
	subject := "Welcome to Smart Diet Tracker"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Set your daily goals and start logging meals and fluids.", name)
	return sendEmail(to, subject, body)
}
