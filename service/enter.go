package service

import (
	"github.com/empregga/eva-portal/service/admin"
	"github.com/empregga/eva-portal/service/user"
)

type ServiceGroup struct {
	UserServiceGroup  user.ServiceGroup
	AdminServiceGroup admin.ServiceGroup
}

var Service = new(ServiceGroup)

// Setup constrói os serviços a partir das instâncias globais.
// Deve rodar depois de Initializer.Run, nunca em init().
func Setup() {
	Service.UserServiceGroup = user.ServiceGroup{
		ChatService:     user.NewChatService(),
		FeedbackService: user.NewFeedbackService(),
		HandoffService:  user.NewHandoffService(),
	}
	Service.AdminServiceGroup = admin.ServiceGroup{
		KnowledgeService: admin.NewKnowledgeService(),
		BlindSpotService: admin.NewBlindSpotService(),
		AnalyticsService: admin.NewAnalyticsService(),
		AuthService:      admin.NewAuthService(),
		UploadService:    admin.NewUploadService(),
	}
}
