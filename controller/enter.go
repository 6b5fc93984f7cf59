package controller

import "github.com/empregga/eva-portal/controller/user"
import "github.com/empregga/eva-portal/controller/admin"

var Api = new(ApiGroup)

type ApiGroup struct {
	UserApiGroup  user.ApiGroup
	AdminApiGroup admin.ApiGroup
}
