package mode

var DetectFrom = detect
