package admin

type ApiGroup struct {
	KnowledgeApi KnowledgeApi
	BlindSpotApi BlindSpotApi
	AnalyticsApi AnalyticsApi
	AuthApi      AuthApi
	UploadApi    UploadApi
}
