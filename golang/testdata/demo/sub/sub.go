package sub

// Flag is a nested package constant.
const Flag = true
