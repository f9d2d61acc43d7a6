package consts

const (
	// PublicationDirtyKey 计票待同步的内容 ID 集合
	PublicationDirtyKey = "publication:dirty"
)

const (
	TallyJobLock = "lock:tally:job"
)
