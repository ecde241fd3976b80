package model

type FileNum = uint32
type FileNumToPath = map[FileNum]string
