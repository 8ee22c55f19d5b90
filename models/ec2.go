package models

type EC2Instance struct {
	InstanceID       string            `json:"instanceId"`
	Name             string            `json:"name,omitempty"`
	PublicIPAddress  string            `json:"publicIp,omitempty"`
	PrivateIPAddress string            `json:"privateIp,omitempty"`
	State            string            `json:"state"`
	InstanceType     string            `json:"instanceType"`
	AZ               string            `json:"availabilityZone,omitempty"`
	Tags             map[string]string `json:"tags,omitempty"`
}
